// wiring tables
package wiring

// Rows are input channels, columns are wiper positions.  The twenties tables
// are numbered 0-19; the machine offsets them by 6 on the plugboard.

var sixes = [SixesChannels][Positions]int{
	{1, 5, 0, 3, 2, 1, 5, 2, 4, 3, 1, 4, 2, 3, 0, 4, 5, 1, 0, 2, 5, 0, 5, 3, 4},
	{0, 2, 4, 2, 5, 0, 4, 5, 3, 4, 0, 3, 0, 1, 5, 3, 1, 2, 1, 0, 4, 2, 3, 5, 1},
	{2, 4, 3, 1, 0, 5, 3, 0, 1, 2, 3, 5, 1, 4, 1, 2, 4, 3, 2, 5, 0, 5, 4, 0, 3},
	{4, 1, 5, 0, 3, 4, 1, 3, 5, 1, 4, 2, 5, 0, 2, 5, 2, 0, 4, 3, 1, 3, 0, 1, 2},
	{3, 0, 1, 5, 4, 2, 0, 4, 2, 0, 5, 1, 3, 2, 4, 0, 3, 4, 5, 1, 3, 1, 2, 4, 5},
	{5, 3, 2, 4, 1, 3, 2, 1, 0, 5, 2, 0, 4, 5, 3, 1, 0, 5, 3, 4, 2, 4, 1, 2, 0},
}

var twentiesI = [TwentiesChannels][Positions]int{
	{5, 3, 16, 2, 18, 1, 15, 0, 16, 11, 19, 4, 14, 10, 11, 7, 6, 9, 12, 0, 8, 17, 15, 4, 13},
	{18, 4, 0, 13, 5, 10, 6, 19, 8, 7, 0, 3, 16, 11, 15, 14, 2, 12, 6, 1, 19, 14, 17, 7, 9},
	{13, 15, 12, 19, 7, 8, 5, 6, 10, 16, 15, 14, 9, 6, 1, 17, 4, 3, 8, 2, 11, 1, 18, 0, 3},
	{0, 16, 5, 3, 19, 13, 17, 15, 7, 8, 10, 1, 18, 2, 6, 0, 17, 13, 11, 3, 4, 12, 9, 14, 7},
	{9, 13, 14, 5, 12, 6, 8, 11, 19, 2, 1, 12, 15, 7, 3, 11, 16, 17, 19, 4, 9, 0, 10, 18, 8},
	{3, 0, 10, 15, 4, 18, 9, 13, 17, 19, 16, 18, 1, 14, 7, 10, 12, 2, 15, 5, 16, 6, 19, 8, 11},
	{1, 19, 18, 7, 17, 5, 12, 4, 6, 3, 8, 5, 10, 15, 14, 16, 18, 1, 13, 6, 0, 9, 4, 11, 2},
	{6, 14, 11, 18, 3, 2, 0, 17, 13, 9, 3, 15, 7, 5, 18, 13, 19, 16, 9, 7, 12, 4, 8, 1, 10},
	{12, 2, 15, 1, 9, 17, 16, 14, 0, 13, 7, 11, 8, 3, 4, 19, 13, 10, 18, 8, 6, 18, 0, 5, 16},
	{8, 7, 17, 11, 2, 12, 1, 9, 15, 4, 14, 13, 6, 19, 0, 15, 10, 18, 5, 9, 14, 16, 3, 2, 19},
	{7, 17, 9, 16, 15, 11, 4, 12, 14, 6, 9, 7, 2, 1, 10, 12, 8, 19, 0, 10, 3, 5, 11, 13, 18},
	{15, 10, 2, 8, 14, 7, 3, 5, 4, 17, 12, 6, 13, 4, 8, 18, 9, 0, 1, 11, 2, 19, 12, 16, 5},
	{2, 11, 6, 4, 13, 9, 10, 7, 18, 1, 2, 16, 17, 0, 19, 8, 1, 5, 10, 12, 15, 8, 6, 3, 14},
	{17, 12, 13, 0, 11, 14, 18, 2, 1, 15, 17, 9, 12, 8, 16, 6, 5, 11, 3, 13, 7, 10, 5, 19, 4},
	{14, 9, 7, 10, 6, 15, 19, 3, 5, 12, 13, 17, 11, 18, 5, 2, 0, 8, 4, 14, 17, 11, 16, 15, 1},
	{10, 18, 19, 9, 1, 16, 13, 8, 11, 5, 4, 2, 0, 17, 13, 3, 14, 6, 2, 15, 10, 7, 1, 12, 17},
	{4, 1, 3, 6, 16, 19, 7, 10, 3, 0, 5, 8, 4, 9, 12, 1, 11, 14, 17, 16, 18, 2, 13, 17, 15},
	{11, 5, 8, 12, 10, 3, 14, 16, 9, 18, 6, 0, 19, 13, 2, 4, 15, 7, 16, 17, 1, 3, 14, 9, 6},
	{19, 8, 1, 14, 0, 4, 2, 18, 12, 14, 11, 10, 5, 16, 17, 9, 3, 4, 7, 18, 13, 15, 2, 6, 0},
	{16, 6, 4, 17, 8, 0, 11, 1, 2, 10, 18, 19, 3, 12, 9, 5, 7, 15, 14, 19, 5, 13, 7, 10, 12},
}

var twentiesII = [TwentiesChannels][Positions]int{
	{14, 11, 3, 5, 6, 4, 7, 19, 8, 9, 10, 1, 15, 18, 17, 19, 2, 4, 13, 7, 16, 0, 15, 18, 12},
	{8, 5, 17, 10, 1, 16, 3, 0, 7, 11, 6, 2, 9, 15, 13, 2, 5, 14, 19, 10, 18, 4, 7, 12, 0},
	{0, 14, 4, 1, 12, 13, 2, 15, 6, 10, 13, 8, 14, 17, 11, 18, 3, 19, 12, 0, 5, 11, 9, 7, 16},
	{4, 1, 7, 19, 2, 6, 10, 9, 14, 17, 3, 9, 0, 11, 18, 1, 13, 8, 16, 5, 0, 19, 12, 15, 14},
	{16, 3, 15, 13, 8, 9, 18, 14, 4, 7, 17, 12, 16, 2, 0, 3, 1, 9, 4, 18, 11, 5, 10, 19, 6},
	{18, 8, 0, 6, 3, 8, 12, 7, 1, 15, 19, 13, 2, 12, 6, 4, 11, 16, 17, 13, 14, 10, 5, 9, 3},
	{2, 7, 11, 17, 16, 18, 1, 13, 3, 19, 5, 14, 12, 8, 9, 10, 15, 0, 7, 4, 19, 13, 18, 6, 15},
	{1, 15, 14, 11, 13, 19, 8, 10, 12, 16, 0, 15, 8, 9, 5, 13, 4, 18, 3, 17, 6, 7, 4, 0, 2},
	{9, 18, 19, 14, 0, 7, 11, 17, 16, 4, 12, 6, 3, 5, 10, 8, 17, 12, 1, 16, 15, 8, 2, 1, 13},
	{7, 16, 13, 2, 11, 12, 15, 4, 0, 5, 18, 10, 6, 1, 14, 9, 19, 11, 14, 2, 8, 6, 3, 17, 4},
	{10, 4, 12, 7, 17, 0, 9, 2, 10, 8, 11, 19, 5, 16, 4, 17, 6, 3, 15, 9, 2, 18, 14, 13, 1},
	{17, 10, 16, 4, 19, 1, 16, 6, 5, 2, 14, 11, 7, 13, 8, 15, 18, 1, 0, 12, 10, 3, 19, 5, 9},
	{11, 19, 10, 9, 5, 15, 13, 12, 18, 3, 4, 17, 1, 10, 7, 14, 0, 6, 8, 11, 12, 2, 16, 8, 17},
	{15, 6, 1, 0, 10, 2, 14, 16, 17, 18, 8, 5, 13, 3, 19, 11, 14, 5, 18, 19, 9, 12, 1, 4, 7},
	{5, 9, 6, 16, 15, 3, 19, 18, 13, 12, 15, 0, 4, 6, 16, 7, 8, 10, 2, 14, 1, 9, 17, 11, 10},
	{12, 17, 8, 18, 14, 11, 5, 3, 9, 6, 1, 4, 10, 19, 3, 6, 7, 13, 5, 15, 17, 16, 0, 2, 8},
	{19, 0, 5, 8, 4, 10, 17, 1, 2, 0, 16, 7, 11, 14, 2, 12, 9, 15, 6, 3, 7, 17, 13, 16, 18},
	{3, 13, 2, 15, 7, 17, 0, 8, 19, 13, 9, 16, 18, 4, 12, 5, 10, 7, 9, 1, 3, 15, 6, 14, 11},
	{13, 12, 9, 3, 18, 5, 6, 11, 15, 14, 7, 18, 17, 0, 1, 16, 12, 2, 11, 6, 4, 14, 8, 10, 19},
	{6, 2, 18, 12, 9, 14, 4, 5, 11, 1, 2, 3, 19, 7, 15, 0, 16, 17, 10, 8, 13, 1, 11, 3, 5},
}

var twentiesIII = [TwentiesChannels][Positions]int{
	{6, 14, 1, 15, 11, 12, 3, 8, 4, 10, 18, 0, 2, 8, 7, 17, 13, 16, 9, 19, 10, 15, 5, 7, 12},
	{18, 16, 10, 2, 17, 8, 6, 5, 13, 15, 7, 11, 3, 10, 12, 15, 0, 18, 14, 8, 19, 4, 9, 6, 1},
	{10, 13, 19, 11, 15, 4, 1, 3, 17, 8, 2, 16, 9, 5, 13, 14, 6, 0, 1, 7, 12, 9, 18, 4, 16},
	{2, 1, 11, 8, 3, 5, 14, 9, 16, 17, 14, 12, 11, 4, 15, 3, 19, 10, 13, 5, 7, 18, 15, 0, 6},
	{19, 11, 0, 3, 8, 7, 16, 17, 12, 2, 13, 8, 0, 9, 18, 1, 5, 6, 10, 11, 15, 3, 4, 14, 13},
	{0, 12, 18, 19, 2, 6, 9, 15, 14, 11, 4, 6, 17, 3, 11, 16, 12, 1, 5, 10, 9, 17, 8, 13, 7},
	{9, 7, 3, 5, 14, 11, 18, 7, 10, 4, 0, 13, 1, 16, 19, 12, 15, 17, 6, 1, 17, 14, 0, 8, 2},
	{5, 2, 9, 18, 12, 16, 4, 13, 11, 14, 10, 1, 7, 18, 6, 11, 17, 3, 0, 4, 13, 16, 19, 15, 8},
	{15, 0, 8, 17, 5, 13, 7, 4, 6, 9, 1, 14, 13, 12, 9, 5, 11, 2, 15, 3, 18, 0, 16, 10, 19},
	{11, 18, 13, 1, 19, 17, 15, 11, 7, 0, 9, 3, 12, 14, 2, 10, 8, 7, 19, 6, 5, 2, 3, 16, 4},
	{16, 8, 5, 4, 7, 19, 0, 16, 2, 13, 11, 4, 18, 6, 14, 19, 3, 9, 12, 15, 14, 1, 10, 17, 15},
	{12, 3, 14, 7, 1, 9, 11, 0, 5, 16, 15, 10, 6, 1, 8, 18, 16, 4, 2, 13, 3, 19, 17, 5, 9},
	{7, 9, 12, 13, 6, 1, 2, 19, 0, 1, 17, 5, 15, 11, 3, 13, 4, 14, 8, 16, 0, 10, 6, 18, 5},
	{8, 6, 2, 10, 9, 18, 12, 14, 1, 3, 19, 15, 5, 17, 16, 4, 10, 11, 7, 2, 16, 5, 13, 19, 0},
	{3, 10, 6, 9, 4, 10, 5, 12, 19, 18, 16, 2, 14, 13, 0, 8, 1, 15, 17, 14, 6, 7, 12, 2, 11},
	{17, 19, 15, 0, 18, 14, 13, 18, 3, 5, 6, 7, 8, 19, 10, 0, 2, 8, 16, 9, 4, 12, 1, 11, 14},
	{4, 15, 17, 14, 13, 3, 19, 1, 8, 7, 12, 17, 16, 0, 4, 7, 9, 5, 18, 12, 2, 6, 11, 3, 10},
	{13, 5, 7, 16, 0, 2, 8, 10, 9, 6, 3, 18, 19, 15, 1, 6, 14, 12, 4, 18, 8, 11, 7, 1, 17},
	{14, 17, 4, 12, 16, 0, 10, 6, 15, 12, 8, 19, 4, 7, 5, 2, 18, 19, 11, 17, 1, 13, 2, 9, 3},
	{1, 4, 16, 6, 10, 15, 17, 2, 18, 19, 5, 9, 10, 2, 17, 9, 7, 13, 3, 0, 11, 8, 14, 12, 18},
}
