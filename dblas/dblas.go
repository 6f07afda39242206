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

// Implementation is the handle through which every routine is called. It
// holds no state: the zero value is ready to use, distinct values are
// interchangeable, and methods may be called concurrently as long as the
// caller-owned buffers do not overlap.
type Implementation struct{}
