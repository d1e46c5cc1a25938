package kernels

// Fixed operands shared by both paths of each pair.
var (
	sumX int32 = 15
	sumY int32 = 40

	vecA = [4]int32{12, 200, 54, 982}
	vecB = [4]int32{91, 42, 65, 21}

	maxMinInput = [8]int32{30, 291, 1, 20, 40, 202, 329, 0}

	matA = Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}
	matB = matA

	pointP1 = [4]int32{1, 2, 3, 4}
	pointP2 = [4]int32{5, 6, 7, 8}
)
