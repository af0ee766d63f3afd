package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FallbackColorKey is the branding entry used for unknown extensions.
const FallbackColorKey = "*"

// brandColors maps a lowercase ".ext" to its language accent color.
var brandColors = map[string]string{
	".1sc":         "#E45649",
	".abap":        "#E8274B",
	".abc":         "#3A6E79",
	".ada":         "#02f88c",
	".adb":         "#02f88c",
	".ads":         "#02f88c",
	".ahk":         "#6594b9",
	".apib":        "#96C224",
	".applescript": "#101F1F",
	".as":          "#B38959",
	".ascx":        "#5d87b3",
	".asm":         "#A8B89F",
	".aspx":        "#5d87b3",
	".awk":         "#d0d0d0",
	".bash":        "#89e051",
	".bat":         "#FFFF80",
	".bb":          "#A571D3",
	".bcl":         "#295789",
	".boo":         "#d4bec1",
	".c":           "#555555",
	".cbl":         "#A040A0",
	".cc":          "#f34b7d",
	".cfg":         "#e0d0a0",
	".cfm":         "#878E99",
	".cfml":        "#878E99",
	".cgi":         "#fc913a",
	".cl":          "#234d20",
	".clj":         "#db5855",
	".cljs":        "#db5855",
	".cls":         "#e0e0e0",
	".cmake":       "#DA3434",
	".cmd":         "#FFFF80",
	".coffee":      "#244776",
	".cp":          "#f34b7d",
	".cpp":         "#f34b7d",
	".cr":          "#d37295",
	".cs":          "#8a3996",
	".csh":         "#89e051",
	".cson":        "#244776",
	".css":         "#563d7c",
	".csv":         "#23ab24",
	".cxx":         "#f34b7d",
	".d":           "#ba595e",
	".dart":        "#00B4AB",
	".def":         "#e0e0e0",
	".diff":        "#888888",
	".dml":         "#005C99",
	".do":          "#8B0000",
	".dtd":         "#e0d0a0",
	".e":           "#ccce35",
	".ebnf":        "#9A7B59",
	".el":          "#027878",
	".erb":         "#701516",
	".erl":         "#B83998",
	".es":          "#CC7832",
	".escript":     "#CC7832",
	".ex":          "#6e4a7e",
	".exs":         "#6e4a7e",
	".f":           "#572e30",
	".f03":         "#572e30",
	".f77":         "#572e30",
	".f90":         "#572e30",
	".f95":         "#572e30",
	".fish":        "#89e051",
	".for":         "#572e30",
	".fpp":         "#f34b7d",
	".fs":          "#584475",
	".fsi":         "#584475",
	".fsscript":    "#584475",
	".fsx":         "#584475",
	".g4":          "#FFAB28",
	".go":          "#00ADD8",
	".gotmpl":      "#3777E6",
	".groovy":      "#e69f56",
	".gs":          "#FFD740",
	".h":           "#408080",
	".handlebars":  "#f7931e",
	".hbs":         "#f7931e",
	".hlsl":        "#aace60",
	".hpp":         "#f34b7d",
	".hs":          "#29b544",
	".hx":          "#ea8a00",
	".hxx":         "#f34b7d",
	".icl":         "#808000",
	".imba":        "#16cec6",
	".inc":         "#e0e0e0",
	".ini":         "#d1dbe0",
	".ino":         "#c867c3",
	".int":         "#4F4F4F",
	".inx":         "#d1dbe0",
	".ipynb":       "#DA5B0B",
	".j":           "#93A1A1",
	".jade":        "#58b346",
	".java":        "#b07219",
	".jl":          "#a270ba",
	".js":          "#f1e05a",
	".json":        "#292929",
	".jsonld":      "#292929",
	".jsp":         "#6D83B8",
	".jsx":         "#61DAFB",
	".ksh":         "#408080",
	".kt":          "#A97BFF",
	".kts":         "#A97BFF",
	".launch":      "#1B5089",
	".less":        "#2a4d69",
	".lhs":         "#71ab5a",
	".lisp":        "#027878",
	".log":         "#A0A0A0",
	".ls":          "#3c6d90",
	".lsp":         "#027878",
	".lua":         "#000080",
	".m":           "#1e4a7e",
	".m4":          "#EE82EE",
	".mak":         "#408080",
	".md":          "#BFBFBF",
	".mk":          "#408080",
	".ml":          "#e3d25b",
	".mli":         "#e3d25b",
	".mlir":        "#5EC8DB",
	".mm":          "#1e4a7e",
	".mo":          "#FF2077",
	".mod":         "#902000",
	".ms":          "#800080",
	".mtml":        "#b7e1f4",
	".mustache":    "#724b3b",
	".njk":         "#724b3b",
	".ny":          "#C41A16",
	".oc":          "#f8ac59",
	".odc":         "#408080",
	".pas":         "#E3F171",
	".patch":       "#888888",
	".php":         "#4F5D95",
	".php3":        "#4F5D95",
	".php4":        "#4F5D95",
	".php5":        "#4F5D95",
	".phtml":       "#4F5D95",
	".pl":          "#f0a83a",
	".pl6":         "#00896b",
	".plx":         "#f0a83a",
	".pm":          "#f0a83a",
	".po":          "#cc6600",
	".pot":         "#cc6600",
	".pov":         "#4A5C95",
	".pp":          "#302B6D",
	".prg":         "#e3d25b",
	".ps":          "#0092ca",
	".ps1":         "#57A64A",
	".psd1":        "#57A64A",
	".psm1":        "#57A64A",
	".py":          "#3572A5",
	".pyc":         "#3572A5",
	".pyd":         "#3572A5",
	".pyi":         "#3572A5",
	".pyo":         "#3572A5",
	".pyw":         "#3572A5",
	".pyx":         "#3572A5",
	".qml":         "#44a57a",
	".r":           "#358a5b",
	".rake":        "#d12127",
	".rb":          "#701516",
	".rhtml":       "#701516",
	".rjs":         "#701516",
	".rs":          "#dea584",
	".rst":         "#7D4900",
	".rt":          "#306e9e",
	".ru":          "#701516",
	".s":           "#C97B4A",
	".sass":        "#CF649A",
	".scala":       "#c22d40",
	".scm":         "#5e9d08",
	".scpt":        "#101F1F",
	".scss":        "#CF649A",
	".sh":          "#89e051",
	".shtml":       "#e45649",
	".sls":         "#DC3E1F",
	".smarty":      "#f0c040",
	".sol":         "#365980",
	".sql":         "#e38c00",
	".st":          "#3a7979",
	".styl":        "#ff6347",
	".sv":          "#3c6d90",
	".svh":         "#3c6d90",
	".swift":       "#F05138",
	".t":           "#E00404",
	".tcl":         "#E44A2D",
	".tex":         "#3D6117",
	".tf":          "#E15A1F",
	".tfvars":      "#E15A1F",
	".thor":        "#701516",
	".tmlanguage":  "#252525",
	".ts":          "#3777E6",
	".tsx":         "#3777E6",
	".twig":        "#c1d026",
	".txt":         "#DCDCDC",
	".vb":          "#8a3996",
	".vba":         "#867db1",
	".vbs":         "#867db1",
	".vhdl":        "#543978",
	".vtl":         "#1e4a7e",
	".vue":         "#41B883",
	".webapp":      "#68C3A6",
	".wxml":        "#388bff",
	".wxss":        "#388bff",
	".xaml":        "#6A2DAD",
	".xml":         "#0066cc",
	".xsd":         "#0066cc",
	".xsl":         "#0066cc",
	".xslt":        "#0066cc",
	".yaml":        "#cb171e",
	".yml":         "#cb171e",
	".zsh":         "#89e051",
	"*":            "#cccccc",
}

// ColorFor returns the accent color for ext (with or without leading dot).
func ColorFor(ext string) string {
	key := "." + strings.ToLower(strings.TrimPrefix(ext, "."))
	if color, ok := brandColors[key]; ok {
		return color
	}

	return brandColors[FallbackColorKey]
}

// Colorize renders ext in its accent color.
func Colorize(ext string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorFor(ext))).Render(ext)
}
