package font

// glyphs holds the metrics of the printable ASCII range, starting at space.
var glyphs = [NumGlyphs]Glyph{
	{Offset: 0, Width: 0, Height: 0, YShift: 0, Spacing: 6},      // space
	{Offset: 0, Width: 2, Height: 13, YShift: 0, Spacing: 1},     // !
	{Offset: 4, Width: 6, Height: 5, YShift: 0, Spacing: 1},      // "
	{Offset: 8, Width: 12, Height: 14, YShift: -1, Spacing: 1},   // #
	{Offset: 29, Width: 9, Height: 17, YShift: -1, Spacing: 1},   // $
	{Offset: 49, Width: 15, Height: 13, YShift: 0, Spacing: 1},   // %
	{Offset: 74, Width: 12, Height: 13, YShift: 0, Spacing: 1},   // &
	{Offset: 94, Width: 2, Height: 5, YShift: 0, Spacing: 1},     // '
	{Offset: 96, Width: 4, Height: 16, YShift: -1, Spacing: 1},   // (
	{Offset: 104, Width: 4, Height: 16, YShift: -1, Spacing: 1},  // )
	{Offset: 112, Width: 7, Height: 8, YShift: 5, Spacing: 1},    // *
	{Offset: 119, Width: 12, Height: 12, YShift: 1, Spacing: 1},  // +
	{Offset: 137, Width: 3, Height: 4, YShift: 11, Spacing: 1},   // ,
	{Offset: 139, Width: 5, Height: 2, YShift: 7, Spacing: 1},    // -
	{Offset: 141, Width: 2, Height: 2, YShift: 11, Spacing: 1},   // .
	{Offset: 142, Width: 6, Height: 15, YShift: 0, Spacing: 1},   // /
	{Offset: 154, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // 0
	{Offset: 169, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // 1
	{Offset: 182, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // 2
	{Offset: 195, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // 3
	{Offset: 210, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // 4
	{Offset: 227, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // 5
	{Offset: 240, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // 6
	{Offset: 255, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // 7
	{Offset: 268, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // 8
	{Offset: 283, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // 9
	{Offset: 298, Width: 2, Height: 9, YShift: 4, Spacing: 2},    // :
	{Offset: 301, Width: 3, Height: 11, YShift: 4, Spacing: 2},   // ;
	{Offset: 306, Width: 11, Height: 10, YShift: 3, Spacing: 2},  // <
	{Offset: 320, Width: 11, Height: 6, YShift: 4, Spacing: 2},   // =
	{Offset: 329, Width: 11, Height: 10, YShift: 3, Spacing: 2},  // >
	{Offset: 343, Width: 7, Height: 13, YShift: 0, Spacing: 1},   // ?
	{Offset: 355, Width: 16, Height: 16, YShift: 0, Spacing: 1},  // @
	{Offset: 387, Width: 12, Height: 13, YShift: 0, Spacing: 1},  // A
	{Offset: 407, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // B
	{Offset: 422, Width: 11, Height: 13, YShift: 0, Spacing: 1},  // C
	{Offset: 440, Width: 11, Height: 13, YShift: 0, Spacing: 1},  // D
	{Offset: 458, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // E
	{Offset: 471, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // F
	{Offset: 484, Width: 11, Height: 13, YShift: 0, Spacing: 1},  // G
	{Offset: 502, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // H
	{Offset: 519, Width: 2, Height: 13, YShift: 0, Spacing: 1},   // I
	{Offset: 523, Width: 5, Height: 17, YShift: -4, Spacing: 1},  // J
	{Offset: 534, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // K
	{Offset: 551, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // L
	{Offset: 564, Width: 12, Height: 13, YShift: 0, Spacing: 1},  // M
	{Offset: 584, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // N
	{Offset: 601, Width: 12, Height: 13, YShift: 0, Spacing: 1},  // O
	{Offset: 621, Width: 8, Height: 13, YShift: 0, Spacing: 1},   // P
	{Offset: 634, Width: 12, Height: 15, YShift: -2, Spacing: 1}, // Q
	{Offset: 657, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // R
	{Offset: 674, Width: 9, Height: 13, YShift: 0, Spacing: 1},   // S
	{Offset: 689, Width: 12, Height: 13, YShift: 0, Spacing: 1},  // T
	{Offset: 709, Width: 10, Height: 13, YShift: 0, Spacing: 1},  // U
	{Offset: 726, Width: 12, Height: 13, YShift: 0, Spacing: 1},  // V
	{Offset: 746, Width: 17, Height: 13, YShift: 0, Spacing: 0},  // W
	{Offset: 774, Width: 11, Height: 13, YShift: 0, Spacing: 0},  // X
	{Offset: 792, Width: 12, Height: 13, YShift: 0, Spacing: 0},  // Y
	{Offset: 812, Width: 11, Height: 13, YShift: 0, Spacing: 1},  // Z
	{Offset: 830, Width: 4, Height: 16, YShift: -1, Spacing: 1},  // [
	{Offset: 838, Width: 6, Height: 15, YShift: -2, Spacing: 1},  // \
	{Offset: 850, Width: 4, Height: 16, YShift: -1, Spacing: 1},  // ]
	{Offset: 858, Width: 11, Height: 5, YShift: 1, Spacing: 1},   // ^
	{Offset: 865, Width: 9, Height: 2, YShift: 16, Spacing: 1},   // _
	{Offset: 868, Width: 4, Height: 3, YShift: 10, Spacing: 1},   // `
	{Offset: 870, Width: 8, Height: 10, YShift: 3, Spacing: 1},   // a
	{Offset: 880, Width: 9, Height: 14, YShift: -1, Spacing: 1},  // b
	{Offset: 896, Width: 8, Height: 10, YShift: 3, Spacing: 1},   // c
	{Offset: 906, Width: 9, Height: 14, YShift: -1, Spacing: 1},  // d
	{Offset: 922, Width: 10, Height: 10, YShift: 3, Spacing: 1},  // e
	{Offset: 935, Width: 7, Height: 14, YShift: -1, Spacing: 1},  // f
	{Offset: 948, Width: 9, Height: 14, YShift: 3, Spacing: 1},   // g
	{Offset: 964, Width: 8, Height: 14, YShift: -1, Spacing: 1},  // h
	{Offset: 978, Width: 2, Height: 14, YShift: -1, Spacing: 1},  // i
	{Offset: 982, Width: 4, Height: 18, YShift: -1, Spacing: 1},  // j
	{Offset: 991, Width: 8, Height: 14, YShift: -1, Spacing: 1},  // k
	{Offset: 1005, Width: 2, Height: 14, YShift: -1, Spacing: 1}, // l
	{Offset: 1009, Width: 14, Height: 10, YShift: 3, Spacing: 1}, // m
	{Offset: 1027, Width: 8, Height: 10, YShift: 3, Spacing: 1},  // n
	{Offset: 1037, Width: 10, Height: 10, YShift: 3, Spacing: 1}, // o
	{Offset: 1050, Width: 9, Height: 14, YShift: 3, Spacing: 1},  // p
	{Offset: 1066, Width: 9, Height: 14, YShift: 3, Spacing: 1},  // q
	{Offset: 1082, Width: 6, Height: 10, YShift: 3, Spacing: 1},  // r
	{Offset: 1090, Width: 7, Height: 10, YShift: 3, Spacing: 1},  // s
	{Offset: 1099, Width: 6, Height: 13, YShift: 0, Spacing: 1},  // t
	{Offset: 1109, Width: 8, Height: 10, YShift: 3, Spacing: 1},  // u
	{Offset: 1119, Width: 10, Height: 10, YShift: 3, Spacing: 0}, // v
	{Offset: 1132, Width: 13, Height: 10, YShift: 3, Spacing: 1}, // w
	{Offset: 1149, Width: 10, Height: 10, YShift: 3, Spacing: 1}, // x
	{Offset: 1162, Width: 10, Height: 14, YShift: 3, Spacing: 1}, // y
	{Offset: 1180, Width: 8, Height: 10, YShift: 3, Spacing: 1},  // z
	{Offset: 1190, Width: 8, Height: 17, YShift: -1, Spacing: 1}, // {
	{Offset: 1207, Width: 2, Height: 18, YShift: -1, Spacing: 1}, // |
	{Offset: 1212, Width: 8, Height: 17, YShift: -1, Spacing: 1}, // }
	{Offset: 1229, Width: 11, Height: 3, YShift: 5, Spacing: 1},  // ~
}

// bitmap is the packed 1 bit per pixel glyph data, MSB first, rows not padded.
var bitmap = [...]byte{
	0xff, 0xff, 0xc3, 0xc0, 0xcf, 0x3c, 0xf3, 0xcc, 0x04, 0x40, 0x44, 0x0c, 0xc0, 0xc8, 0x7f, 0xf7,
	0xff, 0x09, 0x81, 0x90, 0xff, 0xef, 0xfe, 0x13, 0x03, 0x30, 0x32, 0x02, 0x20, 0x08, 0x04, 0x0f,
	0x8f, 0xee, 0x96, 0x43, 0xe0, 0xfc, 0x1f, 0x04, 0xc2, 0x71, 0x7f, 0xf3, 0xf0, 0x20, 0x10, 0x08,
	0x00, 0x78, 0x11, 0x98, 0x43, 0x31, 0x86, 0x62, 0x0c, 0xc8, 0x19, 0x90, 0x1e, 0x4f, 0x01, 0x33,
	0x02, 0x66, 0x08, 0xcc, 0x31, 0x98, 0x43, 0x31, 0x03, 0xc0, 0x0f, 0x01, 0xf8, 0x30, 0x83, 0x00,
	0x38, 0x03, 0xc0, 0x6e, 0x6c, 0x76, 0xc3, 0xcc, 0x18, 0xe1, 0xc7, 0xfe, 0x3e, 0x70, 0xff, 0xc0,
	0x32, 0x66, 0x4c, 0xcc, 0xcc, 0xc4, 0x66, 0x23, 0xc4, 0x66, 0x23, 0x33, 0x33, 0x32, 0x66, 0x4c,
	0x11, 0x25, 0x51, 0xc3, 0x8a, 0xa4, 0x88, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x06, 0x0f, 0xff,
	0xff, 0xf0, 0x60, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x6d, 0x40, 0xff, 0xc0, 0xf0, 0x0c, 0x31,
	0x86, 0x18, 0xe3, 0x0c, 0x31, 0xc6, 0x18, 0x63, 0x0c, 0x00, 0x3e, 0x3f, 0x98, 0xd8, 0x3c, 0x1e,
	0x0f, 0x07, 0x83, 0xc1, 0xe0, 0xd8, 0xcf, 0xe3, 0xe0, 0x38, 0xf8, 0xd8, 0x18, 0x18, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x18, 0xff, 0xff, 0x7c, 0xfe, 0x87, 0x03, 0x03, 0x07, 0x06, 0x0c, 0x18, 0x30,
	0x60, 0xff, 0xff, 0x7e, 0x7f, 0xa0, 0xe0, 0x30, 0x39, 0xf8, 0xfc, 0x07, 0x01, 0x80, 0xe0, 0xff,
	0xe7, 0xe0, 0x07, 0x01, 0xc0, 0xb0, 0x6c, 0x13, 0x08, 0xc6, 0x31, 0x0c, 0xff, 0xff, 0xf0, 0x30,
	0x0c, 0x03, 0x00, 0x7e, 0x7e, 0x60, 0x60, 0x7c, 0x7e, 0x47, 0x03, 0x03, 0x03, 0x87, 0xfe, 0x7c,
	0x1e, 0x1f, 0x9c, 0x5c, 0x0c, 0x06, 0xf3, 0xfd, 0xc7, 0xc1, 0xe0, 0xd8, 0xef, 0xe3, 0xe0, 0xff,
	0xff, 0x06, 0x06, 0x06, 0x0e, 0x0c, 0x0c, 0x1c, 0x18, 0x18, 0x38, 0x30, 0x3e, 0x3f, 0xb8, 0xf8,
	0x3e, 0x3b, 0xf9, 0xfd, 0xc7, 0xc1, 0xe0, 0xf8, 0xef, 0xe3, 0xe0, 0x3e, 0x3f, 0xb8, 0xd8, 0x3c,
	0x1f, 0x1d, 0xfe, 0x7b, 0x01, 0x81, 0xd1, 0xcf, 0xc3, 0xc0, 0xf0, 0x03, 0xc0, 0x6c, 0x00, 0x03,
	0x6a, 0x00, 0x00, 0x20, 0x3c, 0x1f, 0x1f, 0x0f, 0x81, 0xf0, 0x0f, 0x80, 0x3e, 0x01, 0xe0, 0x04,
	0xff, 0xff, 0xfc, 0x00, 0x00, 0x0f, 0xff, 0xff, 0xc0, 0x80, 0x1e, 0x01, 0xf0, 0x07, 0xc0, 0x3e,
	0x07, 0xc3, 0xe3, 0xe0, 0xf0, 0x10, 0x00, 0x79, 0xfe, 0x18, 0x30, 0x61, 0x86, 0x18, 0x30, 0x60,
	0x01, 0x83, 0x00, 0x07, 0xe0, 0x1f, 0xf8, 0x3c, 0x1c, 0x70, 0x06, 0x60, 0x03, 0xe3, 0x63, 0xc7,
	0xe3, 0xc6, 0x63, 0xc6, 0x66, 0xc7, 0xfc, 0xe3, 0x70, 0x60, 0x00, 0x70, 0x00, 0x38, 0x10, 0x1f,
	0xf0, 0x07, 0xc0, 0x06, 0x00, 0x60, 0x0f, 0x00, 0xf0, 0x19, 0x81, 0x98, 0x19, 0x83, 0x0c, 0x3f,
	0xc7, 0xfe, 0x60, 0x66, 0x06, 0xc0, 0x30, 0xfe, 0x7f, 0xb0, 0xd8, 0x6c, 0x37, 0xf3, 0xf9, 0x86,
	0xc1, 0xe0, 0xf0, 0xff, 0xef, 0xe0, 0x0f, 0xc7, 0xfd, 0xc0, 0xb0, 0x0c, 0x01, 0x80, 0x30, 0x06,
	0x00, 0xc0, 0x0c, 0x01, 0xc0, 0x9f, 0xf0, 0xfc, 0xfe, 0x1f, 0xf3, 0x07, 0x60, 0x7c, 0x07, 0x80,
	0xf0, 0x1e, 0x03, 0xc0, 0x78, 0x1f, 0x07, 0x7f, 0xcf, 0xe0, 0xff, 0xff, 0xc0, 0xc0, 0xc0, 0xff,
	0xff, 0xc0, 0xc0, 0xc0, 0xc0, 0xff, 0xff, 0xff, 0xff, 0xc0, 0xc0, 0xc0, 0xfe, 0xfe, 0xc0, 0xc0,
	0xc0, 0xc0, 0xc0, 0xc0, 0x0f, 0xc7, 0xfd, 0xc0, 0xb0, 0x0c, 0x01, 0x87, 0xf0, 0xfe, 0x03, 0xc0,
	0x6c, 0x0d, 0xc1, 0x9f, 0xe1, 0xf8, 0xc0, 0xf0, 0x3c, 0x0f, 0x03, 0xc0, 0xff, 0xff, 0xff, 0x03,
	0xc0, 0xf0, 0x3c, 0x0f, 0x03, 0xc0, 0xc0, 0xff, 0xff, 0xff, 0xc0, 0x18, 0xc6, 0x31, 0x8c, 0x63,
	0x18, 0xc6, 0x31, 0x8c, 0xfe, 0xe0, 0xc1, 0xb0, 0xcc, 0x63, 0x30, 0xd8, 0x3c, 0x0f, 0x03, 0x60,
	0xcc, 0x31, 0x8c, 0x33, 0x06, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0,
	0xc0, 0xc0, 0xff, 0xff, 0xe0, 0x7f, 0x0f, 0xf0, 0xfd, 0x8b, 0xd9, 0xbd, 0x9b, 0xcf, 0x3c, 0xf3,
	0xc6, 0x3c, 0x63, 0xc0, 0x3c, 0x03, 0xc0, 0x30, 0xe0, 0xf8, 0x3f, 0x0f, 0xc3, 0xd8, 0xf6, 0x3c,
	0xcf, 0x1b, 0xc6, 0xf0, 0xfc, 0x3f, 0x07, 0xc1, 0xc0, 0x1f, 0x83, 0xfc, 0x70, 0xe6, 0x06, 0xc0,
	0x3c, 0x03, 0xc0, 0x3c, 0x03, 0xc0, 0x36, 0x06, 0x70, 0xe3, 0xfc, 0x1f, 0x80, 0xfc, 0xfe, 0xc7,
	0xc3, 0xc3, 0xc7, 0xfe, 0xfc, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0x1f, 0x83, 0xfc, 0x70, 0xe6, 0x06,
	0xc0, 0x3c, 0x03, 0xc0, 0x3c, 0x03, 0xc0, 0x36, 0x06, 0x70, 0xe3, 0xfc, 0x1f, 0x80, 0x18, 0x00,
	0xc0, 0xfc, 0x3f, 0x8c, 0x73, 0x0c, 0xc3, 0x31, 0xcf, 0xe3, 0xf0, 0xc6, 0x30, 0xcc, 0x33, 0x06,
	0xc1, 0xc0, 0x3e, 0x3f, 0xb8, 0x58, 0x0c, 0x03, 0xe0, 0xfc, 0x07, 0x01, 0x80, 0xe0, 0xff, 0xe7,
	0xe0, 0xff, 0xff, 0xff, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60,
	0x06, 0x00, 0x60, 0x06, 0x00, 0xc0, 0xf0, 0x3c, 0x0f, 0x03, 0xc0, 0xf0, 0x3c, 0x0f, 0x03, 0xc0,
	0xf0, 0x36, 0x19, 0xfe, 0x3f, 0x00, 0xc0, 0x36, 0x06, 0x60, 0x66, 0x06, 0x30, 0xc3, 0x0c, 0x19,
	0x81, 0x98, 0x19, 0x80, 0xf0, 0x0f, 0x00, 0x60, 0x06, 0x00, 0xc1, 0xc1, 0xe0, 0xe0, 0xd8, 0xd8,
	0xcc, 0x6c, 0x66, 0x36, 0x33, 0x1b, 0x18, 0xd8, 0xd8, 0x6c, 0x6c, 0x36, 0x36, 0x1b, 0x1b, 0x07,
	0x07, 0x03, 0x83, 0x81, 0xc1, 0xc0, 0x70, 0xe6, 0x18, 0xe6, 0x0d, 0xc0, 0xf0, 0x1c, 0x03, 0x80,
	0x78, 0x1b, 0x07, 0x30, 0xc7, 0x30, 0x6e, 0x0e, 0xe0, 0x76, 0x06, 0x30, 0xc1, 0x98, 0x19, 0x80,
	0xf0, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x06, 0x00, 0x60, 0x06, 0x00, 0xff, 0xff, 0xfc, 0x07,
	0x01, 0xc0, 0x30, 0x0e, 0x03, 0x80, 0xe0, 0x18, 0x06, 0x01, 0xc0, 0x7f, 0xff, 0xfe, 0xff, 0xcc,
	0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xff, 0xc3, 0x06, 0x18, 0x61, 0xc3, 0x0c, 0x30, 0xe1, 0x86, 0x18,
	0x30, 0xc0, 0xff, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0xff, 0x0e, 0x03, 0x60, 0xc6, 0x30, 0x6c,
	0x06, 0xff, 0xff, 0xc0, 0xc6, 0x30, 0x3c, 0x7e, 0x47, 0x03, 0x3f, 0xff, 0xc3, 0xc7, 0xff, 0x7b,
	0xc0, 0x60, 0x30, 0x18, 0x0d, 0xe7, 0xfb, 0x8f, 0x83, 0xc1, 0xe0, 0xf0, 0x7c, 0x7f, 0xf6, 0xf0,
	0x1e, 0x7f, 0x61, 0xc0, 0xc0, 0xc0, 0xc0, 0x61, 0x7f, 0x1e, 0x01, 0x80, 0xc0, 0x60, 0x33, 0xdb,
	0xff, 0x8f, 0x83, 0xc1, 0xe0, 0xf0, 0x7c, 0x77, 0xf9, 0xec, 0x1f, 0x1f, 0xe6, 0x1f, 0x03, 0xff,
	0xff, 0xfc, 0x01, 0x81, 0x7f, 0xc7, 0xe0, 0x1e, 0x7c, 0xc1, 0x8f, 0xff, 0xcc, 0x18, 0x30, 0x60,
	0xc1, 0x83, 0x06, 0x00, 0x3d, 0xbf, 0xf8, 0xf8, 0x3c, 0x1e, 0x0f, 0x07, 0xc7, 0x7f, 0x9e, 0xc0,
	0x68, 0x67, 0xf1, 0xf0, 0xc0, 0xc0, 0xc0, 0xc0, 0xde, 0xfe, 0xe7, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3,
	0xc3, 0xc3, 0xf0, 0xff, 0xff, 0xf0, 0x33, 0x00, 0x33, 0x33, 0x33, 0x33, 0x33, 0x33, 0xfe, 0xc0,
	0xc0, 0xc0, 0xc0, 0xc3, 0xc6, 0xcc, 0xd8, 0xf0, 0xf0, 0xd8, 0xcc, 0xc6, 0xc3, 0xff, 0xff, 0xff,
	0xf0, 0xde, 0x7b, 0xfb, 0xee, 0x38, 0xf0, 0xc3, 0xc3, 0x0f, 0x0c, 0x3c, 0x30, 0xf0, 0xc3, 0xc3,
	0x0f, 0x0c, 0x30, 0xde, 0xfe, 0xe7, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0x1e, 0x1f, 0xe6,
	0x1b, 0x03, 0xc0, 0xf0, 0x3c, 0x0d, 0x86, 0x7f, 0x87, 0x80, 0xde, 0x7f, 0xb8, 0xf8, 0x3c, 0x1e,
	0x0f, 0x07, 0xc7, 0xff, 0x6f, 0x30, 0x18, 0x0c, 0x06, 0x00, 0x3d, 0xbf, 0xf8, 0xf8, 0x3c, 0x1e,
	0x0f, 0x07, 0xc7, 0x7f, 0x9e, 0xc0, 0x60, 0x30, 0x18, 0x0c, 0xdf, 0xfe, 0x30, 0xc3, 0x0c, 0x30,
	0xc3, 0x00, 0x7d, 0xff, 0x0f, 0x07, 0xc3, 0xc1, 0xc3, 0xfe, 0xf8, 0x61, 0x86, 0x3f, 0xfd, 0x86,
	0x18, 0x61, 0x86, 0x1f, 0x3c, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xc3, 0xe7, 0x7f, 0x7b, 0xc0,
	0xf0, 0x36, 0x19, 0x86, 0x33, 0x0c, 0xc3, 0x30, 0x78, 0x1e, 0x03, 0x00, 0xc7, 0x1e, 0x38, 0xf1,
	0x46, 0xdb, 0x66, 0xdb, 0x36, 0xd9, 0xa2, 0xc7, 0x1c, 0x38, 0xe1, 0xc7, 0x00, 0xe1, 0xd8, 0x63,
	0x30, 0xcc, 0x1e, 0x07, 0x83, 0x30, 0xcc, 0x61, 0xb8, 0x70, 0xc0, 0xf0, 0x36, 0x19, 0x86, 0x33,
	0x0c, 0xc1, 0xe0, 0x78, 0x0c, 0x03, 0x00, 0xc0, 0x60, 0x78, 0x1c, 0x00, 0xff, 0xff, 0x06, 0x0c,
	0x1c, 0x38, 0x30, 0x70, 0xff, 0xff, 0x0f, 0x1f, 0x18, 0x18, 0x18, 0x18, 0x18, 0xf0, 0xf0, 0x38,
	0x18, 0x18, 0x18, 0x18, 0x18, 0x1f, 0x0f, 0xff, 0xff, 0xff, 0xff, 0xf0, 0xf0, 0xf8, 0x18, 0x18,
	0x18, 0x18, 0x18, 0x0f, 0x0f, 0x1c, 0x18, 0x18, 0x18, 0x18, 0x18, 0xf8, 0xf0, 0x7c, 0x3f, 0xfe,
	0x1f, 0x00,
}
