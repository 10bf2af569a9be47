/*
Copyright © 2024 the InMAP authors.
This file is part of Advect.

Advect is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Advect is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Advect.  If not, see <http://www.gnu.org/licenses/>.
*/

package advectutil

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
)

// nodeFieldToArray reshapes a node field into a (rows, cols) dense array.
// Node numbering is row-major for both grid types, so this is a straight
// copy.
func nodeFieldToArray(v []float64, rows, cols int) *sparse.DenseArray {
	a := sparse.ZerosDense(rows, cols)
	copy(a.Elements, v)
	return a
}

// WriteNetCDF writes data to a NetCDF file as the variable named name,
// with dimensions (y, x).
func WriteNetCDF(filename, name string, data *sparse.DenseArray) error {
	h := cdf.NewHeader([]string{"y", "x"}, []int{data.Shape[0], data.Shape[1]})
	h.AddVariable(name, []string{"y", "x"}, []float32{0})
	h.AddAttribute("", "comment", "Advect simulation output file")
	h.Define()
	ff, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("advect: creating output file: %v", err)
	}
	f, err := cdf.Create(ff, h) // writes the header to ff
	if err != nil {
		ff.Close()
		return fmt.Errorf("advect: writing output header: %v", err)
	}
	data32 := make([]float32, len(data.Elements))
	for i, e := range data.Elements {
		data32[i] = float32(e)
	}
	end := f.Header.Lengths(name)
	start := make([]int, len(end))
	w := f.Writer(name, start, end)
	if _, err := w.Write(data32); err != nil {
		ff.Close()
		return fmt.Errorf("advect: writing output data: %v", err)
	}
	return ff.Close()
}
