/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package pdf417

// pdf417ECWeights holds, for each supported error-correction codeword
// count, the coefficients of the Reed-Solomon generator polynomial over
// GF(929) built from consecutive powers of the field's generator element
// 3 — the same construction PDF417's error-correction annex specifies.
var pdf417ECWeights = map[int][]int{}

func init() {
	for level := 0; level <= 8; level++ {
		n := 1 << uint(level+1)
		pdf417ECWeights[n] = generatorPolynomial(n)
	}
}

// generatorPolynomial builds the degree-n generator polynomial
// (x - 3^0)(x - 3^1)...(x - 3^(n-1)) mod 929, returned as n+1 coefficients
// with the highest degree first dropped (coefficients[0] tracks the
// constant term during construction, matching the iterative algorithm
// used by PDF417 encoders generally).
func generatorPolynomial(n int) []int {
	coefficients := make([]int, n+1)
	coefficients[0] = 1
	modulus := 1
	for i := 0; i < n; i++ {
		for j := i + 1; j > 0; j-- {
			coefficients[j] = (coefficients[j-1] + coefficients[j]*modulus) % 929
		}
		coefficients[0] = (coefficients[0] * modulus) % 929
		modulus = (modulus * 3) % 929
	}
	return coefficients
}
