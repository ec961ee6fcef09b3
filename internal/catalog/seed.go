package catalog

// seedObjects is the built-in catalog: bright named stars (J2000, Yale
// Bright Star Catalog positions) plus a selection of popular Messier
// objects.
var seedObjects = []Object{
	// Stars, brightest first.
	{"Sirius", "HR 2491", "star", 101.287, -16.716, -1.46},
	{"Canopus", "HR 2326", "star", 95.988, -52.696, -0.74},
	{"Arcturus", "HR 5340", "star", 213.915, 19.182, -0.05},
	{"Vega", "HR 7001", "star", 279.235, 38.784, 0.03},
	{"Capella", "HR 1708", "star", 79.172, 45.998, 0.08},
	{"Rigel", "HR 1713", "star", 78.634, -8.202, 0.13},
	{"Procyon", "HR 2943", "star", 114.826, 5.225, 0.34},
	{"Achernar", "HR 472", "star", 24.429, -57.237, 0.46},
	{"Betelgeuse", "HR 2061", "star", 88.793, 7.407, 0.50},
	{"Hadar", "HR 5267", "star", 210.956, -60.373, 0.61},
	{"Altair", "HR 7557", "star", 297.696, 8.868, 0.76},
	{"Acrux", "HR 4730", "star", 186.650, -63.099, 0.76},
	{"Aldebaran", "HR 1457", "star", 68.980, 16.509, 0.85},
	{"Antares", "HR 6134", "star", 247.352, -26.432, 0.96},
	{"Spica", "HR 5056", "star", 201.298, -11.161, 0.97},
	{"Pollux", "HR 2990", "star", 116.329, 28.026, 1.14},
	{"Fomalhaut", "HR 8728", "star", 344.413, -29.622, 1.16},
	{"Deneb", "HR 7924", "star", 310.358, 45.280, 1.25},
	{"Mimosa", "HR 4853", "star", 191.930, -59.689, 1.25},
	{"Regulus", "HR 3982", "star", 152.093, 11.967, 1.35},
	{"Adhara", "HR 2618", "star", 104.656, -28.972, 1.50},
	{"Castor", "HR 2891", "star", 113.650, 31.889, 1.58},
	{"Gacrux", "HR 4763", "star", 187.791, -57.113, 1.63},
	{"Shaula", "HR 6527", "star", 263.402, -37.104, 1.63},
	{"Bellatrix", "HR 1790", "star", 81.283, 6.350, 1.64},
	{"Elnath", "HR 1791", "star", 81.573, 28.608, 1.65},
	{"Alnilam", "HR 1903", "star", 84.053, -1.202, 1.69},
	{"Alnitak", "HR 1948", "star", 85.190, -1.943, 1.77},
	{"Alioth", "HR 4905", "star", 193.507, 55.960, 1.77},
	{"Dubhe", "HR 4301", "star", 165.932, 61.751, 1.79},
	{"Mirfak", "HR 1017", "star", 51.081, 49.861, 1.79},
	{"Alkaid", "HR 5191", "star", 206.885, 49.313, 1.86},
	{"Polaris", "HR 424", "star", 37.954, 89.264, 2.02},
	{"Alphard", "HR 3748", "star", 141.897, -8.659, 2.00},
	{"Hamal", "HR 617", "star", 31.793, 23.463, 2.00},
	{"Diphda", "HR 188", "star", 10.897, -17.987, 2.02},
	{"Nunki", "HR 7121", "star", 283.816, -26.297, 2.02},
	{"Mizar", "HR 5054", "star", 200.981, 54.925, 2.04},
	{"Alpheratz", "HR 15", "star", 2.097, 29.091, 2.06},
	{"Mirach", "HR 337", "star", 17.433, 35.621, 2.05},
	{"Kochab", "HR 5563", "star", 222.676, 74.156, 2.08},
	{"Rasalhague", "HR 6556", "star", 263.734, 12.560, 2.08},
	{"Algol", "HR 936", "star", 47.042, 40.957, 2.12},
	{"Denebola", "HR 4534", "star", 177.265, 14.572, 2.13},
	{"Alphecca", "HR 5793", "star", 233.672, 26.715, 2.23},
	{"Mintaka", "HR 1852", "star", 83.002, -0.299, 2.23},
	{"Sadr", "HR 7796", "star", 305.557, 40.257, 2.23},
	{"Eltanin", "HR 6705", "star", 269.152, 51.489, 2.23},
	{"Schedar", "HR 168", "star", 10.127, 56.537, 2.23},
	{"Caph", "HR 21", "star", 2.295, 59.150, 2.27},
	{"Merak", "HR 4295", "star", 165.460, 56.382, 2.37},
	{"Izar", "HR 5506", "star", 221.247, 27.074, 2.37},
	{"Enif", "HR 8308", "star", 326.046, 9.875, 2.39},
	{"Scheat", "HR 8775", "star", 345.944, 28.083, 2.42},
	{"Alderamin", "HR 8162", "star", 319.645, 62.586, 2.51},
	{"Markab", "HR 8781", "star", 346.190, 15.205, 2.49},
	{"Albireo", "HR 7417", "star", 292.680, 27.960, 3.18},
	{"Thuban", "HR 5291", "star", 211.097, 64.376, 3.65},
	{"Cor Caroli", "HR 4915", "star", 194.007, 38.318, 2.81},
	{"Alcyone", "HR 1165", "star", 56.871, 24.105, 2.87},

	// Messier objects.
	{"Crab Nebula", "M1", "nebula", 83.633, 22.015, 8.4},
	{"Hercules Cluster", "M13", "globular-cluster", 250.423, 36.460, 5.8},
	{"Wild Duck Cluster", "M11", "open-cluster", 282.768, -6.267, 6.3},
	{"Andromeda Galaxy", "M31", "galaxy", 10.685, 41.269, 3.4},
	{"Triangulum Galaxy", "M33", "galaxy", 23.462, 30.660, 5.7},
	{"Orion Nebula", "M42", "nebula", 83.822, -5.391, 4.0},
	{"Beehive Cluster", "M44", "open-cluster", 130.100, 19.667, 3.7},
	{"Pleiades", "M45", "open-cluster", 56.750, 24.117, 1.6},
	{"Whirlpool Galaxy", "M51", "galaxy", 202.470, 47.195, 8.4},
	{"Ring Nebula", "M57", "planetary-nebula", 283.396, 33.029, 8.8},
	{"Sunflower Galaxy", "M63", "galaxy", 198.955, 42.029, 9.3},
	{"Bode's Galaxy", "M81", "galaxy", 148.888, 69.065, 6.9},
	{"Cigar Galaxy", "M82", "galaxy", 148.968, 69.681, 8.4},
	{"Southern Pinwheel", "M83", "galaxy", 204.254, -29.866, 7.5},
	{"Lagoon Nebula", "M8", "nebula", 270.921, -24.380, 6.0},
	{"Eagle Nebula", "M16", "nebula", 274.700, -13.807, 6.4},
	{"Omega Nebula", "M17", "nebula", 275.196, -16.172, 6.0},
	{"Trifid Nebula", "M20", "nebula", 270.621, -23.030, 6.3},
	{"Dumbbell Nebula", "M27", "planetary-nebula", 299.901, 22.721, 7.5},
	{"Sombrero Galaxy", "M104", "galaxy", 189.998, -11.623, 8.0},
	{"Pinwheel Galaxy", "M101", "galaxy", 210.802, 54.349, 7.9},
	{"Great Globular in Pegasus", "M15", "globular-cluster", 322.493, 12.167, 6.2},
	{"Omega Centauri Neighbor", "M22", "globular-cluster", 279.100, -23.905, 5.1},
	{"Double Cluster Neighbor", "M34", "open-cluster", 40.531, 42.722, 5.5},
	{"Ptolemy Cluster", "M7", "open-cluster", 268.463, -34.793, 3.3},
	{"Butterfly Cluster", "M6", "open-cluster", 265.069, -32.242, 4.2},
}
