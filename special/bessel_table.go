// SPDX-License-Identifier: MIT

package special

// Power-series coefficients 1/(4ᵏ·k!·(k+ν)!) in powers of x², ν = 0 and 1.
var (
	besselI0Series = [...]float64{
		1.0, 0.25, 0.015625,
		0.00043402777777777775, 6.781684027777777e-06, 6.781684027777778e-08,
		4.709502797067901e-10, 2.4028075495244395e-12, 9.385966990329842e-15,
		2.896903392077112e-17, 7.242258480192779e-20, 1.4963343967340453e-22,
		2.5978027721077174e-25, 3.842903509035085e-28, 4.9016626390753635e-31,
		5.4462918211948485e-34, 5.318644356635594e-37, 4.60090342269515e-40,
		3.5500798014623073e-43, 2.458504017633177e-46, 1.5365650110207356e-49,
		8.71068600351891e-53, 4.499321282809354e-56, 2.1263333094562166e-59,
		9.228877211181495e-63, 3.691550884472598e-66, 1.3652185223641266e-69,
	}
	besselI1Series = [...]float64{
		1.0, 0.125, 0.005208333333333333,
		0.00010850694444444444, 1.3563368055555556e-06, 1.1302806712962962e-08,
		6.72786113866843e-11, 3.0035094369055494e-13, 1.0428852211477602e-15,
		2.8969033920771115e-18, 6.583871345629799e-21, 1.2469453306117043e-23,
		1.9983098246982443e-26, 2.7449310778822035e-29, 3.267775092716909e-32,
		3.4039323882467803e-35, 3.128614327432702e-38, 2.5560574570528614e-41,
		1.8684630534012144e-44, 1.2292520088165884e-47, 7.316976242955883e-51,
		3.9594027288722314e-54, 1.956226644699719e-57, 8.859722122734235e-61,
		3.691550884472598e-64, 1.4198272632586915e-67, 5.056364897644913e-71,
	}
)

// Chebyshev coefficients of √x·e^{-x}·Iν(x) on 7.75 <= x < 500 in the
// variable u = (1/x - besselChebMid)/besselChebHalf.
// The series is c₀/2 + Σ cₖTₖ(u).
var (
	besselI0Chebyshev = [...]float64{
		0.8048216984478067, 0.0034378780197966974, 7.207529935659612e-05,
		3.1265634360302054e-06, 2.3180909085982848e-07, 2.688248138316617e-08,
		4.05633074931678e-09, 5.212151325816685e-10, -2.944562763939501e-11,
		-5.072758084524659e-11, -1.6173588516649832e-11, -7.363103589617584e-13,
		1.349286137524853e-12, 4.176522754561618e-13, -5.617365037282732e-14,
		-5.893617328980362e-14, -2.506555504217071e-15, 7.172652686272397e-15,
		1.072503757650259e-15, -9.051927751792338e-16, -2.0109002236306883e-16,
		1.2763739788893765e-16, 3.151546993804099e-17, -2.0452781709822008e-17,
		-4.357411978965698e-18, 3.618380480029331e-18,
	}
	besselI1Chebyshev = [...]float64{
		0.7776245774560202, -0.009942107834594517, -0.00011544103714674286,
		-4.18701632706238e-06, -2.8332388572674017e-07, -3.1146764738497367e-08,
		-4.589469858235723e-09, -5.975980149189879e-10, 2.3506940948050715e-11,
		5.310199904195398e-11, 1.748091011145905e-11, 9.831784781637835e-13,
		-1.389189649960354e-12, -4.5100877125652357e-13, 5.2588003140612184e-14,
		6.177018708777572e-14, 3.3778155189601537e-15, -7.38651508111506e-15,
		-1.20359509280103e-15, 9.21540127398409e-16, 2.196141606167309e-16,
		-1.292138138849707e-16, -3.419639987842774e-17, 2.0703914762233114e-17,
		4.759503304350303e-18, -3.6767117287316705e-18,
	}
)
