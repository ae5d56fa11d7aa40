package bitmg

// Shipped magic constants, indexed by square. cmd/magics regenerates them.

// rookMagics hashes rook occupancy into RookBits-wide tables.
var rookMagics = [64]uint64{
	0x0080004001802010, 0x1040100140022008, 0x0080182000809000, 0x0180180080251000,
	0x0200020088042010, 0x0c00900220040008, 0x2480010006000880, 0x0a00040200402081,
	0x0002800020400088, 0x6109004002802100, 0x0a00801000200080, 0x0803800802801000,
	0x0000800800240180, 0x0012800600800401, 0x0011000411002200, 0x1092000844148102,
	0x2000808000400020, 0x1081210040018108, 0x0430002004080062, 0x40040a0020120040,
	0x4621808004010800, 0x0422008002040080, 0x3020140012100108, 0x00000a0021004084,
	0x0000400080022484, 0x0404802100400102, 0x51050041002002b2, 0x0200100100200901,
	0x0005280100041100, 0x0801001900040082, 0x00000e0400887003, 0x400018a20000c407,
	0x0000420082002500, 0x4320822000804001, 0x0010200080805000, 0x0441000821001000,
	0xb140040080803800, 0x4000440080804600, 0x0000229004000108, 0x00b8040052000081,
	0x2200208040008011, 0x0000820902420021, 0x0400410020090010, 0x8010000800108080,
	0x0003350028010010, 0xc002000804420050, 0x0001081042040081, 0x4082208449020004,
	0x0000800020c00080, 0x0840400221009100, 0x010100c010200900, 0x9070801000480080,
	0x8442801401280080, 0x0001000834000300, 0x28060004980b0200, 0x008043042180d200,
	0x1000410020108001, 0x0002104008802101, 0x2000401120004901, 0x0080201000090005,
	0x00c2010820101402, 0xa0490088020c0005, 0x3023000200018413, 0x80000b8046210402,
}

// bishopMagics hashes bishop occupancy into BishopBits-wide tables.
var bishopMagics = [64]uint64{
	0x06400248061520c0, 0x2028100122112320, 0x6110010a08201000, 0x6008194108008100,
	0x0219104000020000, 0x0144901008000a48, 0x2804012818940800, 0x010221011001a000,
	0x1108108202080624, 0x4100202812208030, 0x0846100102102008, 0x0000880845000000,
	0x0800040421800148, 0x02840a3004200222, 0x000800410410c001, 0x0d01106098141000,
	0x4c08007022089810, 0x6008001010128aa0, 0x0010086905020890, 0x0004001840112000,
	0x1200885400a00500, 0x110600008a012020, 0x2080889104101228, 0x0002090042008400,
	0x40e1100005040816, 0x0284100420020180, 0x02441001060a2040, 0x0a08080068220020,
	0x2140840002020201, 0x0010008101029084, 0x0011111486009000, 0x0001020063044100,
	0x0001044090600840, 0x01420120a0104214, 0x0822002a10340800, 0x6074910800040240,
	0x1040004110110100, 0x38500a1020020080, 0x0012020040040421, 0x1210840040028208,
	0x0001082012414c00, 0x810c010708801081, 0x0012050041000802, 0x2148106019000800,
	0x8000250122004400, 0x0002104200200200, 0x0008102900c80200, 0x1118008900c84200,
	0x8080942420040800, 0x0026004208050802, 0x0886102209500020, 0x2818700620981800,
	0x030002a020410100, 0x120009200c042000, 0x4008021002020112, 0x06200a0081010000,
	0x008c340202022006, 0x1028032401281801, 0x0000a00044240400, 0x1022680000608808,
	0x810200220c104402, 0x5000004110044120, 0x0320309010048980, 0x0620200102002140,
}

// ShippedMagics returns copies of the constants DefaultTables is built from.
func ShippedMagics() (rook, bishop [64]uint64) { return rookMagics, bishopMagics }
