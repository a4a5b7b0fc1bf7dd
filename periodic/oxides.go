package periodic

// oxideFactors maps element symbol to its conventional oxide formula and the
// stoichiometric factor converting elemental concentration to oxide
// concentration (same unit). Elements absent from this table are not
// conventionally reported as oxides.
var oxideFactors = map[string]OxideEntry{
	"Na": {"Na2O", 1.3480},
	"Mg": {"MgO", 1.6583},
	"Al": {"Al2O3", 1.8895},
	"Si": {"SiO2", 2.1393},
	"P":  {"P2O5", 2.2914},
	"S":  {"SO3", 2.4972},
	"Cl": {"Cl", 1.0000}, // not conventionally an oxide; reported as-is
	"K":  {"K2O", 1.2046},
	"Ca": {"CaO", 1.3992},
	"Ti": {"TiO2", 1.6681},
	"V":  {"V2O5", 1.7852},
	"Cr": {"Cr2O3", 1.4616},
	"Mn": {"MnO", 1.2912},
	"Fe": {"Fe2O3", 1.4297}, // assumes Fe3+
	"Co": {"CoO", 1.2715},
	"Ni": {"NiO", 1.2725},
	"Cu": {"CuO", 1.2518},
	"Zn": {"ZnO", 1.2448},
	"Ga": {"Ga2O3", 1.3442},
	"Ge": {"GeO2", 1.4408},
	"As": {"As2O3", 1.3203},
	"Se": {"SeO2", 1.4053},
	"Rb": {"Rb2O", 1.0936},
	"Sr": {"SrO", 1.1826},
	"Y":  {"Y2O3", 1.2699},
	"Zr": {"ZrO2", 1.3508},
	"Nb": {"Nb2O5", 1.4305},
	"Mo": {"MoO3", 1.5003},
	"Sn": {"SnO2", 1.2696},
	"Sb": {"Sb2O3", 1.1973},
	"Ba": {"BaO", 1.1165},
	"La": {"La2O3", 1.1728},
	"Ce": {"CeO2", 1.2284},
	"Pr": {"Pr6O11", 1.1703},
	"Nd": {"Nd2O3", 1.1664},
	"Sm": {"Sm2O3", 1.1596},
	"Eu": {"Eu2O3", 1.1579},
	"Gd": {"Gd2O3", 1.1526},
	"Tb": {"Tb4O7", 1.1762},
	"Dy": {"Dy2O3", 1.1477},
	"Ho": {"Ho2O3", 1.1455},
	"Er": {"Er2O3", 1.1435},
	"Tm": {"Tm2O3", 1.1421},
	"Yb": {"Yb2O3", 1.1387},
	"Lu": {"Lu2O3", 1.1371},
	"Hf": {"HfO2", 1.1793},
	"Ta": {"Ta2O5", 1.2211},
	"W":  {"WO3", 1.2610},
	"Pb": {"PbO", 1.0772},
	"Bi": {"Bi2O3", 1.1148},
	"Th": {"ThO2", 1.1379},
	"U":  {"U3O8", 1.1792},
}
