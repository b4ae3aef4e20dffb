package go_ballisticsolver

// Standard drag functions as published by the Ballistic Research Laboratory,
// tabulated as drag coefficient against Mach number.
var g1Points = []DragPoint{
	{Mach: 0.00, Cd: 0.2629},
	{Mach: 0.05, Cd: 0.2558},
	{Mach: 0.10, Cd: 0.2487},
	{Mach: 0.15, Cd: 0.2413},
	{Mach: 0.20, Cd: 0.2344},
	{Mach: 0.25, Cd: 0.2278},
	{Mach: 0.30, Cd: 0.2214},
	{Mach: 0.35, Cd: 0.2155},
	{Mach: 0.40, Cd: 0.2104},
	{Mach: 0.45, Cd: 0.2061},
	{Mach: 0.50, Cd: 0.2032},
	{Mach: 0.55, Cd: 0.2020},
	{Mach: 0.60, Cd: 0.2034},
	{Mach: 0.70, Cd: 0.2165},
	{Mach: 0.725, Cd: 0.2230},
	{Mach: 0.75, Cd: 0.2313},
	{Mach: 0.775, Cd: 0.2417},
	{Mach: 0.80, Cd: 0.2546},
	{Mach: 0.825, Cd: 0.2706},
	{Mach: 0.85, Cd: 0.2901},
	{Mach: 0.875, Cd: 0.3136},
	{Mach: 0.90, Cd: 0.3415},
	{Mach: 0.925, Cd: 0.3734},
	{Mach: 0.95, Cd: 0.4084},
	{Mach: 0.975, Cd: 0.4448},
	{Mach: 1.0, Cd: 0.4805},
	{Mach: 1.025, Cd: 0.5136},
	{Mach: 1.05, Cd: 0.5427},
	{Mach: 1.075, Cd: 0.5677},
	{Mach: 1.10, Cd: 0.5883},
	{Mach: 1.125, Cd: 0.6053},
	{Mach: 1.15, Cd: 0.6191},
	{Mach: 1.20, Cd: 0.6393},
	{Mach: 1.25, Cd: 0.6518},
	{Mach: 1.30, Cd: 0.6589},
	{Mach: 1.35, Cd: 0.6621},
	{Mach: 1.40, Cd: 0.6625},
	{Mach: 1.45, Cd: 0.6607},
	{Mach: 1.50, Cd: 0.6573},
	{Mach: 1.55, Cd: 0.6528},
	{Mach: 1.60, Cd: 0.6474},
	{Mach: 1.65, Cd: 0.6413},
	{Mach: 1.70, Cd: 0.6347},
	{Mach: 1.75, Cd: 0.6280},
	{Mach: 1.80, Cd: 0.6210},
	{Mach: 1.85, Cd: 0.6141},
	{Mach: 1.90, Cd: 0.6072},
	{Mach: 1.95, Cd: 0.6003},
	{Mach: 2.00, Cd: 0.5934},
	{Mach: 2.05, Cd: 0.5867},
	{Mach: 2.10, Cd: 0.5804},
	{Mach: 2.15, Cd: 0.5743},
	{Mach: 2.20, Cd: 0.5685},
	{Mach: 2.25, Cd: 0.5630},
	{Mach: 2.30, Cd: 0.5577},
	{Mach: 2.35, Cd: 0.5527},
	{Mach: 2.40, Cd: 0.5481},
	{Mach: 2.45, Cd: 0.5438},
	{Mach: 2.50, Cd: 0.5397},
	{Mach: 2.60, Cd: 0.5325},
	{Mach: 2.70, Cd: 0.5264},
	{Mach: 2.80, Cd: 0.5211},
	{Mach: 2.90, Cd: 0.5168},
	{Mach: 3.00, Cd: 0.5133},
	{Mach: 3.10, Cd: 0.5105},
	{Mach: 3.20, Cd: 0.5084},
	{Mach: 3.30, Cd: 0.5067},
	{Mach: 3.40, Cd: 0.5054},
	{Mach: 3.50, Cd: 0.5040},
	{Mach: 3.60, Cd: 0.5030},
	{Mach: 3.70, Cd: 0.5022},
	{Mach: 3.80, Cd: 0.5016},
	{Mach: 3.90, Cd: 0.5010},
	{Mach: 4.00, Cd: 0.5006},
	{Mach: 4.20, Cd: 0.4998},
	{Mach: 4.40, Cd: 0.4995},
	{Mach: 4.60, Cd: 0.4992},
	{Mach: 4.80, Cd: 0.4990},
	{Mach: 5.00, Cd: 0.4988},
}

var g5Points = []DragPoint{
	{Mach: 0.00, Cd: 0.1710},
	{Mach: 0.05, Cd: 0.1719},
	{Mach: 0.10, Cd: 0.1727},
	{Mach: 0.15, Cd: 0.1732},
	{Mach: 0.20, Cd: 0.1734},
	{Mach: 0.25, Cd: 0.1730},
	{Mach: 0.30, Cd: 0.1718},
	{Mach: 0.35, Cd: 0.1696},
	{Mach: 0.40, Cd: 0.1668},
	{Mach: 0.45, Cd: 0.1637},
	{Mach: 0.50, Cd: 0.1603},
	{Mach: 0.55, Cd: 0.1566},
	{Mach: 0.60, Cd: 0.1529},
	{Mach: 0.65, Cd: 0.1497},
	{Mach: 0.70, Cd: 0.1473},
	{Mach: 0.75, Cd: 0.1463},
	{Mach: 0.80, Cd: 0.1489},
	{Mach: 0.85, Cd: 0.1583},
	{Mach: 0.875, Cd: 0.1672},
	{Mach: 0.90, Cd: 0.1815},
	{Mach: 0.925, Cd: 0.2051},
	{Mach: 0.95, Cd: 0.2413},
	{Mach: 0.975, Cd: 0.2884},
	{Mach: 1.0, Cd: 0.3379},
	{Mach: 1.025, Cd: 0.3785},
	{Mach: 1.05, Cd: 0.4032},
	{Mach: 1.075, Cd: 0.4147},
	{Mach: 1.10, Cd: 0.4201},
	{Mach: 1.15, Cd: 0.4278},
	{Mach: 1.20, Cd: 0.4338},
	{Mach: 1.25, Cd: 0.4373},
	{Mach: 1.30, Cd: 0.4392},
	{Mach: 1.35, Cd: 0.4403},
	{Mach: 1.40, Cd: 0.4406},
	{Mach: 1.45, Cd: 0.4401},
	{Mach: 1.50, Cd: 0.4386},
	{Mach: 1.55, Cd: 0.4362},
	{Mach: 1.60, Cd: 0.4328},
	{Mach: 1.65, Cd: 0.4286},
	{Mach: 1.70, Cd: 0.4237},
	{Mach: 1.75, Cd: 0.4182},
	{Mach: 1.80, Cd: 0.4121},
	{Mach: 1.85, Cd: 0.4057},
	{Mach: 1.90, Cd: 0.3991},
	{Mach: 1.95, Cd: 0.3926},
	{Mach: 2.00, Cd: 0.3861},
	{Mach: 2.05, Cd: 0.3800},
	{Mach: 2.10, Cd: 0.3741},
	{Mach: 2.15, Cd: 0.3684},
	{Mach: 2.20, Cd: 0.3630},
	{Mach: 2.25, Cd: 0.3578},
	{Mach: 2.30, Cd: 0.3529},
	{Mach: 2.35, Cd: 0.3481},
	{Mach: 2.40, Cd: 0.3435},
	{Mach: 2.45, Cd: 0.3391},
	{Mach: 2.50, Cd: 0.3349},
	{Mach: 2.60, Cd: 0.3269},
	{Mach: 2.70, Cd: 0.3194},
	{Mach: 2.80, Cd: 0.3125},
	{Mach: 2.90, Cd: 0.3060},
	{Mach: 3.00, Cd: 0.2999},
	{Mach: 3.10, Cd: 0.2942},
	{Mach: 3.20, Cd: 0.2889},
	{Mach: 3.30, Cd: 0.2838},
	{Mach: 3.40, Cd: 0.2790},
	{Mach: 3.50, Cd: 0.2745},
	{Mach: 3.60, Cd: 0.2703},
	{Mach: 3.70, Cd: 0.2662},
	{Mach: 3.80, Cd: 0.2624},
	{Mach: 3.90, Cd: 0.2588},
	{Mach: 4.00, Cd: 0.2553},
	{Mach: 4.20, Cd: 0.2488},
	{Mach: 4.40, Cd: 0.2429},
	{Mach: 4.60, Cd: 0.2376},
	{Mach: 4.80, Cd: 0.2326},
	{Mach: 5.00, Cd: 0.2280},
}

var g7Points = []DragPoint{
	{Mach: 0.00, Cd: 0.1198},
	{Mach: 0.05, Cd: 0.1197},
	{Mach: 0.10, Cd: 0.1196},
	{Mach: 0.15, Cd: 0.1194},
	{Mach: 0.20, Cd: 0.1193},
	{Mach: 0.25, Cd: 0.1194},
	{Mach: 0.30, Cd: 0.1194},
	{Mach: 0.35, Cd: 0.1194},
	{Mach: 0.40, Cd: 0.1193},
	{Mach: 0.45, Cd: 0.1193},
	{Mach: 0.50, Cd: 0.1194},
	{Mach: 0.55, Cd: 0.1193},
	{Mach: 0.60, Cd: 0.1194},
	{Mach: 0.65, Cd: 0.1197},
	{Mach: 0.70, Cd: 0.1202},
	{Mach: 0.725, Cd: 0.1207},
	{Mach: 0.75, Cd: 0.1215},
	{Mach: 0.775, Cd: 0.1226},
	{Mach: 0.80, Cd: 0.1242},
	{Mach: 0.825, Cd: 0.1266},
	{Mach: 0.85, Cd: 0.1306},
	{Mach: 0.875, Cd: 0.1368},
	{Mach: 0.90, Cd: 0.1464},
	{Mach: 0.925, Cd: 0.1660},
	{Mach: 0.95, Cd: 0.2054},
	{Mach: 0.975, Cd: 0.2993},
	{Mach: 1.0, Cd: 0.3803},
	{Mach: 1.025, Cd: 0.4015},
	{Mach: 1.05, Cd: 0.4043},
	{Mach: 1.075, Cd: 0.4034},
	{Mach: 1.10, Cd: 0.4014},
	{Mach: 1.125, Cd: 0.3987},
	{Mach: 1.15, Cd: 0.3955},
	{Mach: 1.20, Cd: 0.3884},
	{Mach: 1.25, Cd: 0.3810},
	{Mach: 1.30, Cd: 0.3732},
	{Mach: 1.35, Cd: 0.3657},
	{Mach: 1.40, Cd: 0.3580},
	{Mach: 1.50, Cd: 0.3440},
	{Mach: 1.55, Cd: 0.3376},
	{Mach: 1.60, Cd: 0.3315},
	{Mach: 1.65, Cd: 0.3260},
	{Mach: 1.70, Cd: 0.3209},
	{Mach: 1.75, Cd: 0.3160},
	{Mach: 1.80, Cd: 0.3117},
	{Mach: 1.85, Cd: 0.3078},
	{Mach: 1.90, Cd: 0.3042},
	{Mach: 1.95, Cd: 0.3010},
	{Mach: 2.00, Cd: 0.2980},
	{Mach: 2.05, Cd: 0.2951},
	{Mach: 2.10, Cd: 0.2922},
	{Mach: 2.15, Cd: 0.2892},
	{Mach: 2.20, Cd: 0.2864},
	{Mach: 2.25, Cd: 0.2835},
	{Mach: 2.30, Cd: 0.2807},
	{Mach: 2.35, Cd: 0.2779},
	{Mach: 2.40, Cd: 0.2752},
	{Mach: 2.45, Cd: 0.2725},
	{Mach: 2.50, Cd: 0.2697},
	{Mach: 2.55, Cd: 0.2670},
	{Mach: 2.60, Cd: 0.2643},
	{Mach: 2.65, Cd: 0.2615},
	{Mach: 2.70, Cd: 0.2588},
	{Mach: 2.75, Cd: 0.2561},
	{Mach: 2.80, Cd: 0.2533},
	{Mach: 2.85, Cd: 0.2506},
	{Mach: 2.90, Cd: 0.2479},
	{Mach: 2.95, Cd: 0.2451},
	{Mach: 3.00, Cd: 0.2424},
	{Mach: 3.10, Cd: 0.2368},
	{Mach: 3.20, Cd: 0.2313},
	{Mach: 3.30, Cd: 0.2258},
	{Mach: 3.40, Cd: 0.2205},
	{Mach: 3.50, Cd: 0.2154},
	{Mach: 3.60, Cd: 0.2106},
	{Mach: 3.70, Cd: 0.2060},
	{Mach: 3.80, Cd: 0.2017},
	{Mach: 3.90, Cd: 0.1975},
	{Mach: 4.00, Cd: 0.1935},
	{Mach: 4.20, Cd: 0.1861},
	{Mach: 4.40, Cd: 0.1793},
	{Mach: 4.60, Cd: 0.1730},
	{Mach: 4.80, Cd: 0.1672},
	{Mach: 5.00, Cd: 0.1618},
}

var g8Points = []DragPoint{
	{Mach: 0.00, Cd: 0.2105},
	{Mach: 0.05, Cd: 0.2105},
	{Mach: 0.10, Cd: 0.2104},
	{Mach: 0.15, Cd: 0.2104},
	{Mach: 0.20, Cd: 0.2103},
	{Mach: 0.25, Cd: 0.2103},
	{Mach: 0.30, Cd: 0.2103},
	{Mach: 0.35, Cd: 0.2103},
	{Mach: 0.40, Cd: 0.2103},
	{Mach: 0.45, Cd: 0.2102},
	{Mach: 0.50, Cd: 0.2102},
	{Mach: 0.55, Cd: 0.2102},
	{Mach: 0.60, Cd: 0.2102},
	{Mach: 0.65, Cd: 0.2102},
	{Mach: 0.70, Cd: 0.2103},
	{Mach: 0.75, Cd: 0.2103},
	{Mach: 0.80, Cd: 0.2104},
	{Mach: 0.825, Cd: 0.2104},
	{Mach: 0.85, Cd: 0.2105},
	{Mach: 0.875, Cd: 0.2106},
	{Mach: 0.90, Cd: 0.2109},
	{Mach: 0.925, Cd: 0.2183},
	{Mach: 0.95, Cd: 0.2571},
	{Mach: 0.975, Cd: 0.3358},
	{Mach: 1.0, Cd: 0.4068},
	{Mach: 1.025, Cd: 0.4378},
	{Mach: 1.05, Cd: 0.4476},
	{Mach: 1.075, Cd: 0.4493},
	{Mach: 1.10, Cd: 0.4477},
	{Mach: 1.125, Cd: 0.4450},
	{Mach: 1.15, Cd: 0.4419},
	{Mach: 1.20, Cd: 0.4353},
	{Mach: 1.25, Cd: 0.4283},
	{Mach: 1.30, Cd: 0.4208},
	{Mach: 1.35, Cd: 0.4133},
	{Mach: 1.40, Cd: 0.4059},
	{Mach: 1.45, Cd: 0.3986},
	{Mach: 1.50, Cd: 0.3915},
	{Mach: 1.55, Cd: 0.3845},
	{Mach: 1.60, Cd: 0.3777},
	{Mach: 1.65, Cd: 0.3710},
	{Mach: 1.70, Cd: 0.3645},
	{Mach: 1.75, Cd: 0.3581},
	{Mach: 1.80, Cd: 0.3519},
	{Mach: 1.85, Cd: 0.3458},
	{Mach: 1.90, Cd: 0.3400},
	{Mach: 1.95, Cd: 0.3343},
	{Mach: 2.00, Cd: 0.3288},
	{Mach: 2.05, Cd: 0.3234},
	{Mach: 2.10, Cd: 0.3182},
	{Mach: 2.15, Cd: 0.3131},
	{Mach: 2.20, Cd: 0.3081},
	{Mach: 2.25, Cd: 0.3032},
	{Mach: 2.30, Cd: 0.2983},
	{Mach: 2.35, Cd: 0.2937},
	{Mach: 2.40, Cd: 0.2891},
	{Mach: 2.45, Cd: 0.2845},
	{Mach: 2.50, Cd: 0.2802},
	{Mach: 2.60, Cd: 0.2720},
	{Mach: 2.70, Cd: 0.2642},
	{Mach: 2.80, Cd: 0.2569},
	{Mach: 2.90, Cd: 0.2499},
	{Mach: 3.00, Cd: 0.2432},
	{Mach: 3.10, Cd: 0.2368},
	{Mach: 3.20, Cd: 0.2308},
	{Mach: 3.30, Cd: 0.2251},
	{Mach: 3.40, Cd: 0.2197},
	{Mach: 3.50, Cd: 0.2147},
	{Mach: 3.60, Cd: 0.2101},
	{Mach: 3.70, Cd: 0.2058},
	{Mach: 3.80, Cd: 0.2019},
	{Mach: 3.90, Cd: 0.1983},
	{Mach: 4.00, Cd: 0.1950},
	{Mach: 4.20, Cd: 0.1890},
	{Mach: 4.40, Cd: 0.1837},
	{Mach: 4.60, Cd: 0.1791},
	{Mach: 4.80, Cd: 0.1750},
	{Mach: 5.00, Cd: 0.1713},
}

