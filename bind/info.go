package bind

import (
	"reflect"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joshuapare/paramkit/pkg/types"
)

// Metadata sibling suffixes. For a property "FrameRate" the binder probes
// "FrameRateDisplay", "FrameRateTooltip", and so on, on the same host.
const (
	suffixDisplay   = "Display"
	suffixTooltip   = "Tooltip"
	suffixCategory  = "Category"
	suffixMin       = "Min"
	suffixMax       = "Max"
	suffixStep      = "Step"
	suffixEnumNames = "EnumNames"
)

var metadataSuffixes = []string{
	suffixDisplay, suffixTooltip, suffixCategory,
	suffixMin, suffixMax, suffixStep, suffixEnumNames,
}

// propertyInfo is the transient metadata extracted for one property. It is
// computed once per bind call, consumed to build a descriptor, then dropped.
type propertyInfo struct {
	name      string
	display   string
	tooltip   string
	category  string
	min       float64
	max       float64
	step      float64
	enumNames []string
}

// extractInfo probes the metadata side-channel for one property and fills
// the gaps with conventional defaults.
func extractInfo(host types.Host, name string, cur any) propertyInfo {
	info := propertyInfo{name: name}

	if s, ok := probeString(host, name+suffixDisplay); ok {
		info.display = s
	} else {
		info.display = deriveDisplay(name)
	}
	if s, ok := probeString(host, name+suffixTooltip); ok {
		info.tooltip = s
	}
	if s, ok := probeString(host, name+suffixCategory); ok {
		info.category = s
	}
	info.min, _ = probeFloat(host, name+suffixMin)
	info.max, _ = probeFloat(host, name+suffixMax)
	info.step, _ = probeFloat(host, name+suffixStep)

	if names, ok := probeStrings(host, name+suffixEnumNames); ok {
		info.enumNames = names
	} else if e, ok := cur.(types.Enum); ok {
		info.enumNames = e.EnumNames()
	}
	return info
}

// isMetadataName reports whether name is itself a metadata sibling of another
// property in set, so the binder does not produce a descriptor for it.
func isMetadataName(name string, set map[string]struct{}) bool {
	for _, suffix := range metadataSuffixes {
		base, found := strings.CutSuffix(name, suffix)
		if found && base != "" {
			if _, ok := set[base]; ok {
				return true
			}
		}
	}
	return false
}

func probeString(host types.Host, name string) (string, bool) {
	v, ok := host.Get(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func probeStrings(host types.Host, name string) ([]string, bool) {
	v, ok := host.Get(name)
	if !ok {
		return nil, false
	}
	ss, ok := v.([]string)
	return ss, ok
}

func probeFloat(host types.Host, name string) (float64, bool) {
	v, ok := host.Get(name)
	if !ok {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// deriveDisplay turns a property name into a presentation label: the
// conventional "m_" private prefix is stripped, underscores become spaces and
// camel-case boundaries split into title-cased words ("m_frameRate" becomes
// "Frame Rate").
func deriveDisplay(name string) string {
	name = strings.TrimPrefix(name, "m_")
	name = strings.ReplaceAll(name, "_", " ")

	var words []string
	var cur strings.Builder
	var prev rune
	for _, r := range name {
		switch {
		case r == ' ':
			if cur.Len() > 0 {
				words = append(words, cur.String())
				cur.Reset()
			}
		case unicode.IsUpper(r) && cur.Len() > 0 && !unicode.IsUpper(prev):
			words = append(words, cur.String())
			cur.Reset()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	if cur.Len() > 0 {
		words = append(words, cur.String())
	}
	for i, w := range words {
		words[i] = titleCaser.String(w)
	}
	return strings.Join(words, " ")
}
