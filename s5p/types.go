package s5p

// Family codes and processing classes below follow the mission ground
// segment naming baseline:
// https://sentinels.copernicus.eu/web/sentinel/user-guides/sentinel-5p-tropomi/naming-convention

// FileClasses are the processing-timeliness classes combined with level-1
// and level-2 family codes to form standard product types
var FileClasses = []string{"NRTI", "OFFL", "RPRO", "TEST"}

// OperationalFileClass marks products generated operationally outside the
// timeliness classes; auxiliary filenames carry it and the legacy snow/ice
// scheme implies it
const OperationalFileClass = "OPER"

// Level1FileTypes are the level-1B radiance, irradiance, calibration and
// engineering family codes
var Level1FileTypes = []string{
	"L1B_RA_BD1",
	"L1B_RA_BD2",
	"L1B_RA_BD3",
	"L1B_RA_BD4",
	"L1B_RA_BD5",
	"L1B_RA_BD6",
	"L1B_RA_BD7",
	"L1B_RA_BD8",
	"L1B_IR_UVN",
	"L1B_IR_SIR",
	"L1B_CA_UVN",
	"L1B_CA_SIR",
	"L1B_ENG_DB",
}

// Level2FileTypes are the level-2 geophysical family codes
var Level2FileTypes = []string{
	"L2__AER_AI",
	"L2__AER_LH",
	"L2__CH4___",
	"L2__CLOUD_",
	"L2__CO____",
	"L2__FRESCO",
	"L2__HCHO__",
	"L2__NO2___",
	"L2__NP_BD3",
	"L2__NP_BD6",
	"L2__NP_BD7",
	"L2__O3_TCL",
	"L2__O3_TPR",
	"L2__O3__PR",
	"L2__O3____",
	"L2__SO2___",
}

// AuxiliaryFileTypes are the auxiliary family codes, registered without a
// processing-class suffix: model and meteorological reference data,
// instrument calibration tables and per-processor configuration sets
var AuxiliaryFileTypes = []string{
	"AUX_CTMANA",
	"AUX_CTMFCT",
	"AUX_ISRF__",
	"AUX_MET_2D",
	"AUX_MET_QP",
	"AUX_MET_TP",
	"AUX_NISE__",
	"AUX_SF_UVN",
	"CFG_AER_AI",
	"CFG_AER_LH",
	"CFG_CH4___",
	"CFG_CLOUD_",
	"CFG_CO____",
	"CFG_FRESCO",
	"CFG_HCHO__",
	"CFG_NO2___",
	"CFG_O3____",
	"CFG_SO2___",
}

// SnowIceFileType is the legacy NISE snow/ice extent auxiliary family, the
// only auxiliary product that keeps its upstream NSIDC filename
const SnowIceFileType = "AUX_NISE__"

// ConfigFileTypePrefix marks auxiliary families delivered as processor
// configuration files rather than netCDF data
const ConfigFileTypePrefix = "CFG_"

// StandardProductType builds the registry identifier for a standard product
// from its family code and processing class, e.g. "S5P_L2__NO2____OFFL"
func StandardProductType(fileType, fileClass string) string {
	return "S5P_" + fileType + "_" + fileClass
}
