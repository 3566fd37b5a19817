package mix

// params holds the shift triple and multiplier pair for each width from 8 to
// 64, found by an offline search for good avalanche behaviour at that width
// (murmur3-style finalizers, see
// https://sh1blog.blogspot.com/2016/08/n-bit-mixer-functions-eight-to-64-bits.html).
// Some multipliers are wider than their width; only the low bits take part.
// Widths below 8 are not listed and fall back to identityParam.
var params = [MaxBits + 1]param{
	8:  {s: [3]uint8{4, 3, 4}, m: [2]uint64{0xb, 0x13}},
	9:  {s: [3]uint8{7, 5, 5}, m: [2]uint64{0x2b, 0x93}},
	10: {s: [3]uint8{4, 4, 5}, m: [2]uint64{0x7, 0x2b5}},
	11: {s: [3]uint8{6, 5, 5}, m: [2]uint64{0x5ab, 0xd35}},
	12: {s: [3]uint8{7, 5, 7}, m: [2]uint64{0x347, 0x52d}},
	13: {s: [3]uint8{6, 7, 7}, m: [2]uint64{0x18ab, 0xa53}},
	14: {s: [3]uint8{8, 8, 8}, m: [2]uint64{0x68ab, 0x594b}},
	15: {s: [3]uint8{7, 7, 8}, m: [2]uint64{0x1bab, 0x4b53}},
	16: {s: [3]uint8{8, 7, 9}, m: [2]uint64{0x994b, 0x44d3}},
	17: {s: [3]uint8{8, 8, 10}, m: [2]uint64{0xa15b, 0x1a653}},
	18: {s: [3]uint8{9, 8, 10}, m: [2]uint64{0x2b755, 0x12653}},
	19: {s: [3]uint8{9, 9, 11}, m: [2]uint64{0x48933, 0x5b2d3}},
	20: {s: [3]uint8{10, 10, 10}, m: [2]uint64{0x7c14b, 0xba653}},
	21: {s: [3]uint8{11, 10, 10}, m: [2]uint64{0x7814b, 0xba653}},
	22: {s: [3]uint8{12, 10, 12}, m: [2]uint64{0x3814b, 0x2ba653}},
	23: {s: [3]uint8{12, 10, 12}, m: [2]uint64{0x63ed4b, 0xba653}},
	24: {s: [3]uint8{12, 10, 12}, m: [2]uint64{0x46e963, 0x6da653}},
	25: {s: [3]uint8{12, 12, 14}, m: [2]uint64{0x140e96b, 0x10da6d3}},
	26: {s: [3]uint8{13, 12, 14}, m: [2]uint64{0x340e96b, 0x10da4d3}},
	27: {s: [3]uint8{14, 12, 14}, m: [2]uint64{0x840e96b, 0x149a653}},
	28: {s: [3]uint8{14, 12, 14}, m: [2]uint64{0xb7829a9, 0x8cad969}},
	29: {s: [3]uint8{14, 14, 14}, m: [2]uint64{0x16069ab, 0x18cad969}},
	30: {s: [3]uint8{15, 14, 17}, m: [2]uint64{0x35069ab, 0x18cad969}},
	31: {s: [3]uint8{18, 15, 16}, m: [2]uint64{0x204c2ca5, 0x55c8ad1d}},
	32: {s: [3]uint8{17, 13, 16}, m: [2]uint64{0x2256a58d, 0xf3ea6b47}},
	33: {s: [3]uint8{17, 15, 17}, m: [2]uint64{0x3e10a9ad, 0x19b3cb5b3}},
	34: {s: [3]uint8{18, 16, 19}, m: [2]uint64{0x23c65b4cd, 0x1a1ecb5a7}},
	35: {s: [3]uint8{19, 16, 18}, m: [2]uint64{0x5e056b58d, 0x91ae4b47}},
	36: {s: [3]uint8{19, 16, 20}, m: [2]uint64{0xbe6d6a5a7, 0x83ad6c67}},
	37: {s: [3]uint8{20, 18, 20}, m: [2]uint64{0x1a7fd6a5a5, 0x193b54e67}},
	38: {s: [3]uint8{19, 17, 20}, m: [2]uint64{0x1777ea5a7, 0x3393b96c67}},
	39: {s: [3]uint8{19, 16, 19}, m: [2]uint64{0x5a1fb6b1a7, 0x109b354c6b}},
	40: {s: [3]uint8{20, 17, 21}, m: [2]uint64{0xa90158b6a5, 0x372fadb365}},
	41: {s: [3]uint8{21, 17, 21}, m: [2]uint64{0x6e2f72aced, 0x1b48e6b8a2d}},
	42: {s: [3]uint8{22, 18, 21}, m: [2]uint64{0x3cd00c2a6b5, 0xab2094b165}},
	43: {s: [3]uint8{23, 21, 25}, m: [2]uint64{0x395426aa6ad, 0x3e65cb946c5}},
	44: {s: [3]uint8{23, 19, 21}, m: [2]uint64{0x52ec35ea48d, 0x89a3894c67}},
	45: {s: [3]uint8{22, 18, 23}, m: [2]uint64{0x3a9426e35ad, 0x521d0e9ab71}},
	46: {s: [3]uint8{21, 20, 23}, m: [2]uint64{0x25798b76e55b, 0x18dcae1b1a91}},
	47: {s: [3]uint8{25, 22, 23}, m: [2]uint64{0x35dc8daad2d, 0x1c8266bb64f3}},
	48: {s: [3]uint8{22, 21, 26}, m: [2]uint64{0x43a812d4ed35, 0xa8f9d21b4457}},
	49: {s: [3]uint8{25, 24, 25}, m: [2]uint64{0x6aeb5bc6ad33, 0x29f195a9c4d5}},
	50: {s: [3]uint8{25, 22, 25}, m: [2]uint64{0x17350165a8ceb, 0x154a30da53cf}},
	51: {s: [3]uint8{26, 22, 24}, m: [2]uint64{0xc038a795a55b, 0x48dbcfb291a87}},
	52: {s: [3]uint8{28, 22, 25}, m: [2]uint64{0xc1b201deaadab, 0x11db051adadf}},
	53: {s: [3]uint8{27, 24, 24}, m: [2]uint64{0xd51d9086a5e6b, 0xe1baa371d131d}},
	54: {s: [3]uint8{30, 22, 29}, m: [2]uint64{0x99442a48b48b, 0x220df7b4a5dad7}},
	55: {s: [3]uint8{28, 24, 26}, m: [2]uint64{0x6ad29a13c684e5, 0x4e583917858539}},
	56: {s: [3]uint8{31, 25, 30}, m: [2]uint64{0x8cbd48536544a7, 0xf0e9029a39197d}},
	57: {s: [3]uint8{30, 25, 30}, m: [2]uint64{0x117016da974e395, 0xfb5b9b563418dd}},
	58: {s: [3]uint8{29, 29, 33}, m: [2]uint64{0x116e5cf9872c477, 0xe2a28c5123359d}},
	59: {s: [3]uint8{30, 21, 30}, m: [2]uint64{0x7470543fd56dcb9, 0x39a3759502b38c5}},
	60: {s: [3]uint8{31, 26, 28}, m: [2]uint64{0xd67eb4dd862849d, 0x8b2611528f3bd7b}},
	61: {s: [3]uint8{30, 24, 29}, m: [2]uint64{0xdb38b0d9843951d, 0xdfb620d2de29d33}},
	62: {s: [3]uint8{32, 30, 35}, m: [2]uint64{0x2bfba303554aa5ad, 0x3b52aa1f019b9869}},
	63: {s: [3]uint8{30, 24, 32}, m: [2]uint64{0x1e2699283f56170d, 0x7573d08f69f3795d}},
	64: {s: [3]uint8{30, 26, 34}, m: [2]uint64{0xee291b1b5f61cc4d, 0xc2d00d8e4dfb2929}},
}
