package services

// Symbolic icon codes used by the presentation layer.
const (
	IconSun          = "sun"
	IconCloud        = "cloud"
	IconRain         = "rain"
	IconLightRain    = "light-rain"
	IconStorm        = "storm"
	IconSnow         = "snow"
	IconFog          = "fog"
	IconPartlyCloudy = "partly-cloudy"
)

const (
	HotTip      = "It's hot outside! Remember to stay hydrated and use sunscreen."
	ColdTip     = "It's cold today. Don't forget to bundle up before heading out!"
	PleasantTip = "Pleasant weather today. Enjoy your day!"
)

// IconForCondition maps an upstream condition group to its icon. Unknown
// groups fall back to partly-cloudy.
func IconForCondition(condition string) string {
	switch condition {
	case "Clear":
		return IconSun
	case "Clouds":
		return IconCloud
	case "Rain":
		return IconRain
	case "Drizzle":
		return IconLightRain
	case "Thunderstorm":
		return IconStorm
	case "Snow":
		return IconSnow
	case "Mist", "Fog":
		return IconFog
	default:
		return IconPartlyCloudy
	}
}

// TipForTemperature picks the advice line shown under the current conditions.
func TipForTemperature(celsius int) string {
	switch {
	case celsius > 25:
		return HotTip
	case celsius < 10:
		return ColdTip
	default:
		return PleasantTip
	}
}
