package cmap

// Stop tables for the built-in colormaps. Viridis, plasma, inferno and
// magma use the matplotlib anchor colors; jet and gray are the classic
// ramps. Values are linear RGB in [0, 1].

var colormaps = map[string]Colormap{
	"viridis": {stops: [][3]float32{
		{0.267, 0.005, 0.329},
		{0.283, 0.141, 0.458},
		{0.254, 0.265, 0.530},
		{0.207, 0.372, 0.553},
		{0.164, 0.471, 0.558},
		{0.128, 0.567, 0.551},
		{0.135, 0.659, 0.518},
		{0.267, 0.749, 0.441},
		{0.478, 0.821, 0.318},
		{0.741, 0.873, 0.150},
		{0.993, 0.906, 0.144},
	}},
	"plasma": {stops: [][3]float32{
		{0.050, 0.030, 0.528},
		{0.294, 0.012, 0.631},
		{0.490, 0.012, 0.658},
		{0.658, 0.133, 0.588},
		{0.796, 0.275, 0.473},
		{0.898, 0.420, 0.365},
		{0.973, 0.580, 0.254},
		{0.992, 0.765, 0.157},
		{0.940, 0.975, 0.131},
	}},
	"inferno": {stops: [][3]float32{
		{0.001, 0.000, 0.014},
		{0.133, 0.047, 0.318},
		{0.341, 0.062, 0.429},
		{0.533, 0.133, 0.416},
		{0.729, 0.212, 0.333},
		{0.890, 0.349, 0.200},
		{0.978, 0.557, 0.034},
		{0.988, 0.788, 0.196},
		{0.988, 0.998, 0.645},
	}},
	"magma": {stops: [][3]float32{
		{0.001, 0.000, 0.014},
		{0.114, 0.065, 0.276},
		{0.317, 0.071, 0.485},
		{0.513, 0.148, 0.508},
		{0.716, 0.215, 0.475},
		{0.904, 0.320, 0.388},
		{0.987, 0.535, 0.382},
		{0.997, 0.770, 0.535},
		{0.987, 0.991, 0.750},
	}},
	"jet": {stops: [][3]float32{
		{0.000, 0.000, 0.500},
		{0.000, 0.000, 1.000},
		{0.000, 0.500, 1.000},
		{0.000, 1.000, 1.000},
		{0.500, 1.000, 0.500},
		{1.000, 1.000, 0.000},
		{1.000, 0.500, 0.000},
		{1.000, 0.000, 0.000},
		{0.500, 0.000, 0.000},
	}},
	"gray": {stops: [][3]float32{
		{0, 0, 0},
		{1, 1, 1},
	}},
}
