package domain

// Icon is a symbolic reference to a pictogram. Presentation layers map it to something renderable.
type Icon string

const (
	IconArmchair     Icon = "armchair"
	IconPlaneTakeoff Icon = "plane-takeoff"
	IconLuggage      Icon = "luggage"
	IconUtensils     Icon = "utensils"
	IconWifi         Icon = "wifi"
	IconShieldCheck  Icon = "shield-check"
	IconZap          Icon = "zap"
)

// Service is an offerable airport service. Values are immutable once placed in a catalog.
type Service struct {
	ID          string
	Name        string
	Description string
	Price       Money
	Icon        Icon
}
