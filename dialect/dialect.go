// Package dialect carries the schemas that tell the generic block engine
// which keywords a concrete OGS5 file type accepts, in which order, and what
// its default block looks like. Built-in schemas cover the common file types;
// further ones can be declared in HCL files and loaded at runtime.
package dialect

import (
	"strings"

	"github.com/dhamidi/ogs5/block"
)

// BC models boundary condition files (*.bc).
var BC = block.Dialect{
	Name:         "BC",
	Ext:          ".bc",
	ForceWrite:   true,
	MainKeywords: []string{"BOUNDARY_CONDITION"},
	SubKeywords: map[string][]string{
		"BOUNDARY_CONDITION": {
			"PCS_TYPE",
			"PRIMARY_VARIABLE",
			"COMP_NAME",
			"GEO_TYPE",
			"DIS_TYPE",
			"TIM_TYPE",
			"FCT_TYPE",
			"MSH_TYPE",
			"DIS_TYPE_CONDITION",
			"EPSILON",
			"TIME_CONTROLLED_ACTIVE",
			"EXCAVATION",
			"NO_DISP_INCREMENT",
			"COPY_VALUE",
			"PRESSURE_AS_HEAD",
			"CONSTRAINED",
		},
	},
	Std: map[string]any{
		"PCS_TYPE":         "GROUNDWATER_FLOW",
		"PRIMARY_VARIABLE": "HEAD",
		"DIS_TYPE":         []any{"CONSTANT", 0.0},
		"GEO_TYPE":         []any{"POLYLINE", "boundary"},
	},
}

// IC models initial condition files (*.ic).
var IC = block.Dialect{
	Name:         "IC",
	Ext:          ".ic",
	MainKeywords: []string{"INITIAL_CONDITION"},
	SubKeywords: map[string][]string{
		"INITIAL_CONDITION": {
			"PCS_TYPE",
			"PRIMARY_VARIABLE",
			"COMP_NAME",
			"STORE_VALUES",
			"DIS_TYPE",
			"GEO_TYPE",
		},
	},
	Std: map[string]any{
		"PCS_TYPE":         "GROUNDWATER_FLOW",
		"PRIMARY_VARIABLE": "HEAD",
		"GEO_TYPE":         "DOMAIN",
		"DIS_TYPE":         []any{"CONSTANT", 0.0},
	},
}

// ST models source term files (*.st).
var ST = block.Dialect{
	Name:         "ST",
	Ext:          ".st",
	MainKeywords: []string{"SOURCE_TERM"},
	SubKeywords: map[string][]string{
		"SOURCE_TERM": {
			"PCS_TYPE",
			"PRIMARY_VARIABLE",
			"COMP_NAME",
			"GEO_TYPE",
			"DIS_TYPE",
			"NODE_AVERAGING",
			"DISTRIBUTE_VOLUME_FLUX",
			"NEGLECT_SURFACE_WATER_PRESSURE",
			"EXPLICIT_SURFACE_WATER_PRESSURE",
			"CHANNEL",
			"AIR_BREAKING",
			"TIM_TYPE",
			"TIME_INTERPOLATION",
			"FCT_TYPE",
			"MSH_TYPE",
			"CONSTRAINED",
		},
	},
	Std: map[string]any{
		"PCS_TYPE":         "GROUNDWATER_FLOW",
		"PRIMARY_VARIABLE": "HEAD",
		"GEO_TYPE":         []any{[]any{"POINT", "WELL"}},
		"DIS_TYPE":         []any{[]any{"CONSTANT_NEUMANN", -1.0e-03}},
	},
}

// PCS models process definition files (*.pcs).
var PCS = block.Dialect{
	Name:         "PCS",
	Ext:          ".pcs",
	ForceWrite:   true,
	MainKeywords: []string{"PROCESS"},
	SubKeywords: map[string][]string{
		"PROCESS": {
			"PCS_TYPE",
			"NUM_TYPE",
			"CPL_TYPE",
			"TIM_TYPE",
			"APP_TYPE",
			"COUNT",
			"PRIMARY_VARIABLE",
			"TEMPERATURE_UNIT",
			"ELEMENT_MATRIX_OUTPUT",
			"BOUNDARY_CONDITION_OUTPUT",
			"ST_RHS",
			"PROCESSED_BC",
			"MEMORY_TYPE",
			"RELOAD",
			"DEACTIVATED_SUBDOMAIN",
			"MSH_TYPE",
			"MEDIUM_TYPE",
			"SATURATION_SWITCH",
			"USE_VELOCITIES_FOR_TRANSPORT",
			"PHASE_TRANSITION",
			"TIME_CONTROLLED_EXCAVATION",
			"NEGLECT_H_INI_EFFECT",
			"UPDATE_INI_STATE",
			"CONSTANT",
		},
	},
	Std: map[string]any{
		"PCS_TYPE": "GROUNDWATER_FLOW",
		"NUM_TYPE": "NEW",
	},
}

// NUM models numerics files (*.num).
var NUM = block.Dialect{
	Name:         "NUM",
	Ext:          ".num",
	MainKeywords: []string{"NUMERICS"},
	SubKeywords: map[string][]string{
		"NUMERICS": {
			"PCS_TYPE",
			"RENUMBER",
			"PLASTICITY_TOLERANCE",
			"NON_LINEAR_ITERATION",
			"NON_LINEAR_SOLVER",
			"LINEAR_SOLVER",
			"OVERALL_COUPLING",
			"COUPLING_ITERATIONS",
			"COUPLING_CONTROL",
			"COUPLED_PROCESS",
			"EXTERNAL_SOLVER_OPTION",
			"ELE_GAUSS_POINTS",
			"ELE_MASS_LUMPING",
			"ELE_UPWINDING",
			"ELE_SUPG",
			"GRAVITY_PROFILE",
			"DYNAMIC_DAMPING",
			"LOCAL_PICARD1",
			"NON_LINEAR_UPDATE_VELOCITY",
			"FEM_FCT",
			"NEWTON_DAMPING",
			"ADDITIONAL_NEWTON_TOLERANCES",
		},
	},
	Std: map[string]any{
		"PCS_TYPE":      "GROUNDWATER_FLOW",
		"LINEAR_SOLVER": []any{2, 5, 1.0e-14, 1000, 1.0, 100, 4},
	},
}

// TIM models time stepping files (*.tim).
var TIM = block.Dialect{
	Name:         "TIM",
	Ext:          ".tim",
	ForceWrite:   true,
	MainKeywords: []string{"TIME_STEPPING"},
	SubKeywords: map[string][]string{
		"TIME_STEPPING": {
			"PCS_TYPE",
			"TIME_START",
			"TIME_END",
			"TIME_UNIT",
			"INDEPENDENT",
			"TIME_STEPS",
			"TIME_SPLITS",
			"CRITICAL_TIME",
			"TIME_CONTROL",
		},
	},
	Std: map[string]any{
		"PCS_TYPE":   "GROUNDWATER_FLOW",
		"TIME_START": 0,
		"TIME_END":   1000,
		"TIME_STEPS": []any{10, 100},
	},
}

// MMP models medium property files (*.mmp). PERMEABILITY_TENSOR is declared
// before PERMEABILITY_DISTRIBUTION on purpose: OGS5 reads them in this order
// and misassigns values otherwise.
var MMP = block.Dialect{
	Name:         "MMP",
	Ext:          ".mmp",
	MainKeywords: []string{"MEDIUM_PROPERTIES"},
	SubKeywords: map[string][]string{
		"MEDIUM_PROPERTIES": {
			"PCS_TYPE",
			"NAME",
			"GEO_TYPE",
			"GEOMETRY_DIMENSION",
			"GEOMETRY_INCLINATION",
			"GEOMETRY_AREA",
			"POROSITY",
			"VOL_MAT",
			"VOL_BIO",
			"TORTUOSITY",
			"FLOWLINEARITY",
			"ORGANIC_CARBON",
			"STORAGE",
			"CONDUCTIVITY_MODEL",
			"UNCONFINED",
			"PERMEABILITY_TENSOR",
			"PERMEABILITY_FUNCTION_DEFORMATION",
			"PERMEABILITY_FUNCTION_STRAIN",
			"PERMEABILITY_FUNCTION_PRESSURE",
			"PERMEABILITY_SATURATION",
			"PERMEABILITY_FUNCTION_STRESS",
			"PERMEABILITY_FUNCTION_EFFSTRESS",
			"PERMEABILITY_FUNCTION_VELOCITY",
			"PERMEABILITY_FUNCTION_POROSITY",
			"CAPILLARY_PRESSURE",
			"TRANSFER_COEFFICIENT",
			"SPECIFIC_STORAGE",
			"STORAGE_FUNCTION_EFFSTRESS",
			"MASS_DISPERSION",
			"COMPOUND_DEPENDENT_DT",
			"HEAT_DISPERSION",
			"DIFFUSION",
			"EVAPORATION",
			"SURFACE_FRICTION",
			"WIDTH",
			"RILL",
			"CHANNEL",
			"PERMEABILITY_DISTRIBUTION",
			"POROSITY_DISTRIBUTION",
			"HEAT_TRANSFER",
			"PARTICLE_DIAMETER",
			"INTERPHASE_FRICTION",
			"ELEMENT_VOLUME_MULTIPLYER",
		},
	},
	Std: map[string]any{
		"GEOMETRY_DIMENSION":  2,
		"STORAGE":             []any{1, 1.0e-4},
		"PERMEABILITY_TENSOR": []any{"ISOTROPIC", 1.0e-4},
		"POROSITY":            []any{1, 0.2},
	},
}

// MPD models distributed medium property files (*.mpd), the carrier of both
// serializer quirks: CRLF line endings and flush-left DATA rows. MPD files
// tolerate no leading comment line.
var MPD = block.Dialect{
	Name:         "MPD",
	Ext:          ".mpd",
	NoTopComment: true,
	MainKeywords: []string{"MEDIUM_PROPERTIES_DISTRIBUTED"},
	SubKeywords: map[string][]string{
		"MEDIUM_PROPERTIES_DISTRIBUTED": {
			"MSH_TYPE",
			"MMP_TYPE",
			"DIS_TYPE",
			"CONVERSION_FACTOR",
			"DATA",
		},
	},
}

// OUT models output control files (*.out). VERSION carries its content
// directly, with no sub keywords.
var OUT = block.Dialect{
	Name:         "OUT",
	Ext:          ".out",
	MainKeywords: []string{"OUTPUT", "VERSION"},
	SubKeywords: map[string][]string{
		"OUTPUT": {
			"NOD_VALUES",
			"PCON_VALUES",
			"ELE_VALUES",
			"RWPT_VALUES",
			"GEO_TYPE",
			"TIM_TYPE",
			"DAT_TYPE",
			"VARIABLESHARING",
			"AMPLIFIER",
			"PCS_TYPE",
			"DIS_TYPE",
			"MSH_TYPE",
			"MMP_VALUES",
			"MFP_VALUES",
			"TECPLOT_ZONE_SHARE",
		},
		"VERSION": {""},
	},
	Std: map[string]any{
		"NOD_VALUES": "HEAD",
		"GEO_TYPE":   "DOMAIN",
		"DAT_TYPE":   "PVD",
		"TIM_TYPE":   []any{"STEPS", 1},
	},
}

// Builtin lists every built-in dialect.
var Builtin = []block.Dialect{BC, IC, ST, PCS, NUM, TIM, MMP, MPD, OUT}

// ByName looks a built-in dialect up by its tag ("BC", "mpd", ...).
func ByName(name string) (block.Dialect, bool) {
	name = strings.ToUpper(name)
	for _, d := range Builtin {
		if d.Name == name {
			return d, true
		}
	}
	return block.Dialect{}, false
}

// ByExt looks a built-in dialect up by file extension (".bc", ...).
func ByExt(ext string) (block.Dialect, bool) {
	ext = strings.ToLower(ext)
	for _, d := range Builtin {
		if d.Ext == ext {
			return d, true
		}
	}
	return block.Dialect{}, false
}
