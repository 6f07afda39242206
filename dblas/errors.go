// Copyright 2026 go-blas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dblas

// Panic messages for arguments outside the caller contract. All
// validation happens before a routine writes to any of its arguments.
const (
	negativeN  = "blas: n < 0"
	negativeM  = "blas: m < 0"
	negativeK  = "blas: k < 0"
	negativeKL = "blas: kL < 0"
	negativeKU = "blas: kU < 0"

	zeroIncX = "blas: zero x index increment"
	zeroIncY = "blas: zero y index increment"

	badUplo      = "blas: illegal triangle"
	badTranspose = "blas: illegal transpose"
	badDiag      = "blas: illegal diagonal"
	badSide      = "blas: illegal side"
	badFlag      = "blas: illegal rotm flag"

	badLdA = "blas: bad leading dimension of a"
	badLdB = "blas: bad leading dimension of b"
	badLdC = "blas: bad leading dimension of c"

	shortX  = "blas: insufficient length of x"
	shortY  = "blas: insufficient length of y"
	shortA  = "blas: insufficient length of a"
	shortB  = "blas: insufficient length of b"
	shortC  = "blas: insufficient length of c"
	shortAP = "blas: insufficient length of ap"
)
