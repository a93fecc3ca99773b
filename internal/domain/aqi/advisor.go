package aqi

import "strings"

// adviceTable maps lower-cased category names to their guidance records. The
// texts mirror the published EPA/CPCB phrasing the frontend displays verbatim.
var adviceTable = map[string]AdviceRecord{
	"good": {
		General:         "Air quality is considered satisfactory, and air pollution poses little or no risk.",
		Children:        "Enjoy your usual outdoor activities.",
		Elderly:         "Enjoy your usual outdoor activities.",
		Sensitive:       "None.",
		Mask:            "Not required",
		OutdoorActivity: "Ideal for outdoor activities.",
	},
	"satisfactory": {
		General:         "Air quality is acceptable. However, for some pollutants there may be a moderate health concern for a very small number of people who are unusually sensitive to air pollution.",
		Children:        "Okay to play outside.",
		Elderly:         "Okay to be outside.",
		Sensitive:       "Active children and adults, and people with respiratory disease, such as asthma, should limit prolonged outdoor exertion.",
		Mask:            "Not required usually",
		OutdoorActivity: "Good time for jogging.",
	},
	"moderate": {
		General:         "Members of sensitive groups may experience health effects. The general public is not likely to be affected.",
		Children:        "Limit prolonged outdoor exertion.",
		Elderly:         "Limit prolonged outdoor exertion.",
		Sensitive:       "Active children and adults, and people with respiratory disease, such as asthma, should limit prolonged outdoor exertion.",
		Mask:            "Recommended for sensitive groups",
		OutdoorActivity: "Reduce prolonged or heavy exertion. Take more breaks during outdoor activities.",
	},
	"poor": {
		General:         "Everyone may begin to experience health effects; members of sensitive groups may experience more serious health effects.",
		Children:        "Avoid prolonged or heavy exertion.",
		Elderly:         "Avoid prolonged or heavy exertion.",
		Sensitive:       "Avoid prolonged or heavy exertion. Move activities indoors or reschedule.",
		Mask:            "N95 mask recommended",
		OutdoorActivity: "Avoid heavy exertion. Move activities indoors.",
	},
	"very poor": {
		General:         "Health warnings of emergency conditions. The entire population is more likely to be affected.",
		Children:        "Avoid all outdoor exertion.",
		Elderly:         "Avoid all outdoor exertion.",
		Sensitive:       "Avoid all physical activity outdoors.",
		Mask:            "N95 mask mandatory if outside",
		OutdoorActivity: "Avoid all physical activity outdoors.",
	},
	"severe": {
		General:         "Health alert: everyone may experience more serious health effects.",
		Children:        "Stay indoors and keep activity levels low.",
		Elderly:         "Stay indoors and keep activity levels low.",
		Sensitive:       "Remain indoors and keep activity levels low.",
		Mask:            "N95 mask mandatory. Avoid going out.",
		OutdoorActivity: "Do not go outdoors.",
	},
}

// adviceUnavailable is returned for categories without a record (Unknown,
// Error, arbitrary strings). Mask and outdoor activity get the shorter "N/A"
// so the frontend badge stays compact.
var adviceUnavailable = AdviceRecord{
	General:         "No data available.",
	Children:        "No data available.",
	Elderly:         "No data available.",
	Sensitive:       "No data available.",
	Mask:            "N/A",
	OutdoorActivity: "N/A",
}

// Advise returns the guidance record for a category. Lookup is
// case-insensitive and total: unrecognized input yields the sentinel record.
func Advise(category string) AdviceRecord {
	if rec, ok := adviceTable[strings.ToLower(category)]; ok {
		return rec
	}
	return adviceUnavailable
}
