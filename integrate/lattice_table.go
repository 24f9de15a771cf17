// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

const (
	numLatticeSizes = 28
	maxLatticeDim   = 100
)

// Lattice sizes, each roughly 1.5 times the previous one.
var latticeSizes = [numLatticeSizes]int{
	31, 47, 73, 113, 173, 263, 397, 593, 907, 1361,
	2053, 3079, 4621, 6947, 10427, 15641, 23473, 35221, 52837, 79259,
	118891, 178349, 267523, 401287, 601942, 902933, 1354471, 2031713,
}

// korobovMultipliers[i][d-2] is the generator multiplier z for lattice
// size latticeSizes[i] in dimension d. The lattice generating vector is
// (1, z, z², ...) mod P. Each multiplier was chosen by minimizing the
// P₂ lattice criterion for its dimension.
var korobovMultipliers = [numLatticeSizes][maxLatticeDim - 1]int{
	{ // 31
		12, 11, 9, 7, 7, 7, 7, 7, 7, 11,
		7, 11, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7, 7,
		7, 7, 7, 7, 7, 7, 7, 7, 7,
	},
	{ // 47
		13, 11, 10, 16, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 6, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17, 17,
		17, 17, 17, 17, 17, 17, 17, 17, 17,
	},
	{ // 73
		27, 14, 20, 11, 20, 20, 28, 28, 28, 28,
		28, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 28, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 28, 11, 28, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11, 11,
		11, 11, 11, 11, 11, 11, 11, 11, 11,
	},
	{ // 113
		35, 36, 39, 25, 39, 39, 39, 39, 39, 5,
		5, 5, 39, 39, 39, 39, 21, 21, 21, 29,
		21, 29, 45, 45, 29, 29, 29, 39, 39, 39,
		39, 29, 29, 29, 29, 29, 29, 29, 29, 29,
		39, 39, 39, 39, 39, 39, 39, 39, 39, 39,
		39, 39, 39, 39, 39, 39, 39, 39, 39, 39,
		39, 39, 39, 39, 39, 39, 39, 39, 39, 39,
		39, 39, 39, 29, 29, 29, 39, 29, 39, 39,
		29, 29, 39, 39, 39, 39, 39, 39, 39, 39,
		39, 39, 39, 29, 29, 39, 39, 39, 39,
	},
	{ // 173
		73, 28, 16, 68, 59, 49, 55, 17, 10, 61,
		10, 61, 10, 10, 33, 10, 85, 10, 10, 10,
		10, 10, 10, 10, 10, 33, 33, 33, 10, 10,
		10, 10, 83, 83, 83, 83, 10, 10, 10, 10,
		10, 10, 10, 10, 10, 10, 10, 59, 10, 61,
		61, 61, 61, 28, 28, 28, 28, 28, 28, 61,
		61, 61, 61, 61, 61, 61, 61, 61, 61, 61,
		61, 61, 61, 61, 61, 61, 61, 28, 28, 28,
		28, 61, 61, 61, 61, 61, 61, 61, 61, 61,
		61, 61, 61, 61, 61, 61, 61, 61, 61,
	},
	{ // 263
		109, 37, 26, 78, 92, 31, 125, 125, 31, 78,
		78, 125, 94, 94, 94, 94, 94, 94, 79, 79,
		94, 94, 94, 94, 94, 94, 94, 94, 94, 94,
		94, 94, 94, 94, 94, 94, 94, 94, 94, 94,
		94, 94, 94, 94, 94, 94, 94, 94, 94, 94,
		94, 94, 94, 94, 94, 94, 94, 94, 94, 94,
		94, 94, 94, 94, 94, 94, 94, 94, 94, 94,
		94, 94, 94, 94, 95, 95, 95, 95, 95, 95,
		95, 95, 95, 95, 95, 95, 95, 95, 95, 95,
		95, 95, 95, 94, 95, 94, 94, 94, 94,
	},
	{ // 397
		151, 71, 177, 120, 105, 40, 155, 59, 131, 129,
		76, 131, 76, 76, 76, 76, 131, 131, 161, 101,
		101, 101, 101, 46, 46, 101, 101, 101, 101, 101,
		101, 101, 101, 101, 101, 56, 101, 56, 116, 116,
		116, 116, 116, 116, 116, 116, 116, 116, 116, 116,
		116, 116, 116, 116, 116, 116, 116, 116, 116, 116,
		116, 116, 116, 116, 116, 116, 116, 116, 116, 116,
		116, 116, 116, 116, 116, 116, 116, 116, 116, 56,
		116, 116, 116, 116, 116, 116, 116, 116, 116, 116,
		116, 116, 116, 116, 116, 116, 116, 116, 46,
	},
	{ // 593
		229, 189, 256, 203, 250, 250, 131, 250, 280, 267,
		281, 267, 267, 250, 250, 49, 49, 267, 49, 49,
		215, 215, 49, 49, 49, 49, 49, 49, 215, 49,
		49, 171, 171, 52, 52, 52, 52, 52, 52, 52,
		52, 52, 52, 52, 52, 52, 52, 52, 52, 52,
		52, 52, 52, 52, 52, 52, 52, 52, 171, 171,
		171, 52, 52, 52, 52, 52, 52, 52, 52, 52,
		52, 52, 52, 52, 52, 52, 52, 52, 52, 52,
		52, 52, 52, 52, 52, 52, 52, 52, 52, 52,
		52, 52, 52, 52, 52, 52, 52, 52, 52,
	},
	{ // 907
		264, 273, 316, 400, 372, 342, 437, 293, 437, 308,
		315, 315, 48, 315, 111, 413, 383, 322, 142, 142,
		256, 256, 256, 256, 256, 256, 256, 256, 256, 131,
		131, 131, 315, 315, 315, 315, 57, 57, 131, 131,
		131, 131, 131, 131, 131, 131, 90, 90, 90, 90,
		90, 90, 90, 90, 90, 90, 90, 90, 90, 90,
		90, 90, 90, 90, 90, 90, 90, 90, 90, 90,
		90, 90, 90, 90, 36, 36, 36, 36, 36, 36,
		36, 36, 36, 36, 36, 36, 36, 36, 36, 36,
		36, 36, 36, 36, 36, 36, 36, 36, 36,
	},
	{ // 1361
		380, 220, 219, 122, 542, 395, 217, 217, 228, 228,
		654, 551, 668, 518, 668, 668, 206, 668, 551, 206,
		206, 478, 668, 668, 478, 478, 478, 478, 478, 559,
		559, 75, 478, 75, 75, 75, 75, 75, 75, 75,
		75, 75, 75, 75, 75, 75, 75, 75, 75, 75,
		75, 75, 465, 465, 465, 75, 465, 465, 465, 465,
		465, 465, 438, 465, 438, 465, 465, 465, 465, 465,
		465, 465, 465, 465, 465, 465, 465, 465, 465, 465,
		465, 465, 465, 372, 465, 372, 465, 465, 465, 465,
		465, 465, 465, 504, 465, 465, 465, 465, 465,
	},
	{ // 2053
		794, 430, 960, 696, 640, 727, 521, 847, 338, 753,
		992, 289, 654, 654, 773, 285, 654, 654, 654, 366,
		366, 366, 366, 366, 366, 366, 366, 366, 366, 366,
		366, 366, 366, 366, 366, 366, 366, 366, 674, 366,
		366, 366, 366, 366, 366, 366, 366, 366, 366, 366,
		366, 366, 366, 366, 366, 366, 1022, 1022, 1022, 1022,
		1022, 1022, 1022, 1022, 674, 1022, 674, 674, 674, 674,
		674, 674, 674, 933, 933, 933, 674, 674, 674, 674,
		674, 674, 674, 674, 674, 674, 674, 674, 674, 674,
		674, 674, 674, 674, 674, 674, 674, 674, 674,
	},
	{ // 3079
		1189, 690, 287, 1185, 344, 899, 343, 1218, 1218, 711,
		711, 622, 711, 711, 439, 423, 1422, 508, 508, 508,
		1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422,
		1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422, 1422,
		1291, 1291, 1291, 1291, 1291, 1291, 1291, 1291, 1291, 421,
		421, 421, 801, 801, 801, 801, 801, 801, 801, 801,
		801, 801, 801, 801, 801, 801, 421, 421, 421, 421,
		421, 421, 421, 421, 421, 421, 1426, 1426, 1426, 1426,
		1426, 1426, 1426, 1426, 1426, 1426, 1426, 1426, 1426, 1426,
		1426, 1426, 1426, 1426, 1426, 1426, 1426, 1426, 1426,
	},
	{ // 4621
		1764, 1018, 1859, 1491, 818, 2136, 1929, 1442, 777, 1502,
		1502, 1502, 195, 747, 1645, 1173, 2074, 2074, 2074, 2074,
		2074, 2074, 1645, 1747, 1747, 1747, 667, 667, 404, 1645,
		1645, 1645, 1747, 1645, 1747, 1747, 1747, 1747, 1747, 1747,
		2009, 2009, 1747, 1747, 1747, 1747, 1747, 1747, 2009, 2009,
		2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009,
		2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009, 2009,
		2009, 2009, 210, 210, 210, 210, 210, 210, 210, 210,
		210, 210, 210, 210, 210, 210, 210, 210, 210, 210,
		210, 210, 210, 210, 210, 210, 210, 210, 210,
	},
	{ // 6947
		2854, 3195, 452, 2915, 378, 1796, 2562, 1642, 92, 92,
		92, 92, 92, 1833, 1833, 3300, 2562, 3345, 2366, 3345,
		3345, 3345, 3345, 2547, 2562, 2547, 2547, 2547, 2547, 3300,
		2547, 2547, 2547, 1048, 734, 2384, 2384, 2384, 354, 354,
		117, 117, 117, 117, 117, 117, 117, 117, 117, 117,
		117, 117, 117, 257, 276, 257, 257, 257, 257, 257,
		257, 257, 257, 276, 257, 257, 257, 257, 276, 276,
		276, 276, 276, 276, 276, 276, 276, 276, 276, 276,
		276, 276, 276, 276, 276, 276, 276, 276, 276, 276,
		276, 276, 276, 276, 276, 276, 276, 276, 276,
	},
	{ // 10427
		4542, 2755, 1791, 1660, 730, 1169, 1502, 3749, 1102, 1102,
		1102, 1102, 1102, 4548, 1290, 1290, 1290, 1290, 1290, 1290,
		3818, 3818, 3818, 3818, 3818, 3818, 3818, 3818, 3818, 3818,
		3818, 1747, 1747, 1747, 1395, 1395, 2978, 3783, 3783, 3783,
		3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783,
		3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783,
		3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783, 3783,
		3783, 3783, 3783, 3783, 2978, 2978, 2978, 2978, 2978, 2978,
		2978, 2978, 2978, 2978, 2978, 2978, 2978, 2978, 2978, 2978,
		2978, 2978, 2978, 2978, 2978, 2978, 2978, 2978, 2978,
	},
	{ // 15641
		4640, 4964, 3957, 7500, 7076, 7076, 1011, 6665, 6665, 423,
		2486, 2486, 2486, 2486, 2486, 2486, 2486, 7659, 6695, 617,
		4436, 617, 617, 617, 617, 1873, 535, 1873, 4786, 4786,
		4786, 617, 4786, 4786, 4786, 4786, 6148, 6148, 221, 221,
		535, 7322, 7322, 535, 535, 535, 7644, 535, 535, 535,
		535, 535, 535, 535, 3118, 2298, 3118, 3118, 3118, 3118,
		3118, 3118, 2298, 2298, 2298, 3771, 3771, 3771, 3771, 3771,
		3771, 3771, 7218, 7218, 7218, 7218, 6054, 7218, 6054, 7218,
		7218, 7218, 6054, 6054, 6054, 3771, 3771, 3771, 3771, 3771,
		3771, 3771, 3771, 3771, 3771, 3771, 3771, 3771, 3771,
	},
	{ // 23473
		10508, 9670, 8703, 8587, 2906, 9322, 10461, 7625, 9446, 1181,
		1181, 4909, 4909, 8894, 8894, 1014, 1014, 1181, 1181, 1181,
		1181, 1181, 1181, 1181, 1181, 1181, 1181, 1181, 1181, 1181,
		4909, 4909, 4909, 4909, 4394, 4394, 4394, 4394, 4394, 4394,
		4394, 4394, 4394, 4394, 4394, 6474, 4394, 4394, 4394, 4394,
		4394, 4394, 4394, 4394, 4394, 4394, 4394, 4394, 10228, 10228,
		10228, 10228, 4394, 4394, 4394, 4394, 4394, 4394, 4394, 4394,
		4394, 4394, 4394, 4394, 4394, 4394, 4394, 4394, 4394, 4394,
		4394, 2678, 2678, 4394, 2678, 2678, 2678, 2678, 2678, 2678,
		2678, 2678, 4394, 4394, 4394, 4394, 4394, 4394, 4394,
	},
	{ // 35221
		9466, 1552, 16211, 10094, 2114, 7890, 10616, 16477, 4055, 6093,
		6093, 6093, 6093, 9999, 16806, 16806, 16806, 16806, 16806, 16806,
		16806, 16806, 16806, 16806, 16806, 16806, 16806, 16806, 16806, 16806,
		16806, 1204, 1204, 1204, 1204, 1204, 4991, 4991, 4991, 4991,
		4991, 4991, 4991, 4991, 4991, 4991, 4991, 4991, 4991, 11393,
		11393, 11393, 11393, 14707, 12080, 9920, 9920, 9920, 14707, 14707,
		14707, 4991, 14707, 4991, 4991, 4991, 4991, 11393, 11393, 4991,
		4991, 4991, 4991, 4991, 4991, 4991, 4991, 4991, 4991, 4991,
		4991, 11393, 11393, 11393, 11393, 11393, 11393, 11393, 11393, 11393,
		11393, 11393, 11393, 11393, 11393, 11393, 11393, 11393, 11393,
	},
	{ // 52837
		23044, 8748, 21847, 9669, 10082, 294, 10082, 6083, 294, 294,
		294, 294, 7999, 19992, 19992, 19992, 19992, 19992, 16520, 16520,
		16520, 16520, 19992, 10082, 10082, 10082, 10082, 10082, 10082, 10082,
		10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082,
		10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082, 10082,
		10082, 10082, 10082, 10082, 19992, 19992, 19992, 19992, 19992, 22439,
		19992, 19992, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439,
		22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439,
		22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439,
		22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439, 22439,
	},
	{ // 79259
		17185, 31068, 18156, 35730, 17185, 36366, 22718, 26877, 20798, 5108,
		5108, 5108, 5108, 5108, 5108, 5108, 5108, 26331, 26331, 28383,
		18156, 18156, 18156, 18156, 18156, 26331, 26331, 26331, 26331, 26331,
		26331, 26331, 26331, 26331, 18156, 18156, 18156, 18156, 18156, 18156,
		18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156,
		18156, 26331, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156,
		18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156,
		18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156, 18156,
		18156, 18156, 18156, 26331, 26331, 26331, 26331, 26331, 26331, 26331,
		18156, 18156, 26331, 26331, 26331, 26331, 26331, 26331, 26331,
	},
	{ // 118891
		51782, 38871, 30472, 51782, 51782, 40953, 41268, 51782, 24257, 24257,
		1865, 24257, 40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953,
		40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953,
		40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953, 40953,
		40953, 40953, 40953, 23162, 23162, 23162, 23162, 23162, 23162, 23162,
		33623, 23162, 33623, 33623, 23162, 23162, 23162, 23162, 23162, 23162,
		23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162,
		23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162,
		23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162,
		23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162, 23162,
	},
	{ // 178349
		70447, 71688, 16855, 16855, 85874, 16855, 14593, 1832, 33220, 33220,
		33220, 33220, 33220, 33220, 33220, 33220, 33220, 33220, 33220, 33220,
		33220, 33220, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012,
		86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012,
		86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 63793,
		86012, 86012, 86012, 86012, 86012, 63793, 63793, 63793, 63793, 63793,
		63793, 63793, 63793, 63793, 63793, 63793, 63793, 63793, 63793, 63793,
		63793, 63793, 86012, 86012, 63793, 63793, 86012, 86012, 86012, 86012,
		86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012,
		86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012, 86012,
	},
	{ // 267523
		119760, 95864, 67948, 35404, 12959, 12959, 45188, 12959, 12959, 45188,
		121628, 53718, 53718, 53718, 53718, 53718, 53718, 103329, 103329, 103329,
		103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329,
		103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329, 103329,
		103329, 103329, 103329, 69711, 69711, 69711, 69711, 69711, 69711, 69711,
		69711, 69711, 69711, 69711, 69711, 69711, 69711, 69711, 68952, 68952,
		68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952,
		68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952, 68952,
		68952, 68952, 68952, 68952, 68952, 45188, 45188, 45188, 45188, 45188,
		45188, 45188, 45188, 45188, 45188, 45188, 45188, 45188, 45188,
	},
	{ // 401287
		107456, 174303, 181493, 158700, 19971, 190415, 164118, 158700, 158700, 198187,
		198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187,
		198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187,
		3410, 3410, 3410, 3410, 198187, 198187, 3410, 118851, 118851, 118851,
		118851, 198187, 198187, 198187, 198187, 198187, 3410, 3410, 3410, 3410,
		3410, 3410, 3410, 3410, 3410, 3410, 3410, 3410, 3410, 3410,
		3410, 3410, 3410, 3410, 3410, 3410, 3410, 3410, 3410, 198187,
		198187, 3410, 3410, 198187, 198187, 198187, 198187, 198187, 198187, 198187,
		198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187,
		198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187, 198187,
	},
	{ // 601942
		115367, 204553, 182835, 182835, 55683, 55683, 55683, 82007, 204553, 82007,
		82007, 82007, 237551, 82007, 82007, 82007, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
		237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551, 237551,
	},
	{ // 902933
		116601, 48269, 328144, 151000, 375666, 338612, 338612, 338612, 328144, 116601,
		116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601,
		116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601, 116601,
		116601, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269,
		48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269,
		48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269, 48269,
		48269, 48269, 48269, 48269, 116601, 116601, 116601, 116601, 116601, 116601,
		116601, 116601, 116601, 48269, 48269, 48269, 48269, 48269, 48269, 48269,
		48269, 48269, 48269, 116601, 48269, 48269, 48269, 48269, 48269, 116601,
		116601, 116601, 48269, 48269, 48269, 116601, 48269, 48269, 48269,
	},
	{ // 1354471
		588068, 388347, 74255, 588068, 588068, 388347, 588068, 588068, 523134, 523134,
		523134, 523134, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777,
		167777, 167777, 388347, 388347, 388347, 388347, 388347, 388347, 388347, 388347,
		388347, 388347, 388347, 167777, 167777, 167777, 167777, 167777, 475065, 475065,
		475065, 475065, 475065, 475065, 475065, 475065, 475065, 475065, 475065, 475065,
		475065, 475065, 475065, 475065, 475065, 475065, 167777, 167777, 167777, 167777,
		167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777,
		167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777,
		167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777,
		167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777, 167777,
	},
	{ // 2031713
		306179, 575788, 942506, 208183, 502055, 502055, 502055, 706865, 706865, 706865,
		706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865,
		706865, 706865, 706865, 706865, 706865, 250726, 706865, 706865, 706865, 706865,
		706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865,
		706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865, 706865,
		910694, 985786, 910694, 910694, 910694, 910694, 910694, 910694, 910694, 910694,
		910694, 910694, 910694, 910694, 910694, 910694, 910694, 985786, 910694, 910694,
		910694, 910694, 910694, 910694, 910694, 910694, 910694, 910694, 910694, 672460,
		672460, 672460, 672460, 672460, 672460, 672460, 672460, 672460, 672460, 672460,
		672460, 672460, 672460, 672460, 672460, 672460, 672460, 672460, 672460,
	},
}
