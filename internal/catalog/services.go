package catalog

import (
	"github.com/nikolayk812/airport-services/internal/domain"
	"golang.org/x/text/currency"
)

func defaultServices(cur currency.Unit) []domain.Service {
	return []domain.Service{
		{
			ID:          "1",
			Name:        "Extra Legroom Seat",
			Description: "Upgrade to a seat with extra legroom for more comfort",
			Price:       domain.NewMoney(45, cur),
			Icon:        domain.IconArmchair,
		},
		{
			ID:          "2",
			Name:        "Priority Boarding",
			Description: "Board the aircraft before general passengers",
			Price:       domain.NewMoney(25, cur),
			Icon:        domain.IconPlaneTakeoff,
		},
		{
			ID:          "3",
			Name:        "Extra Baggage",
			Description: "Add 23kg of checked baggage to your booking",
			Price:       domain.NewMoney(60, cur),
			Icon:        domain.IconLuggage,
		},
		{
			ID:          "4",
			Name:        "In-Flight Meal",
			Description: "Pre-order a hot meal for your flight",
			Price:       domain.NewMoney(18, cur),
			Icon:        domain.IconUtensils,
		},
		{
			ID:          "5",
			Name:        "Lounge Access",
			Description: "Relax in our premium lounge before your flight",
			Price:       domain.NewMoney(55, cur),
			Icon:        domain.IconArmchair,
		},
		{
			ID:          "6",
			Name:        "Wi-Fi Package",
			Description: "Stay connected with unlimited in-flight Wi-Fi",
			Price:       domain.NewMoney(12, cur),
			Icon:        domain.IconWifi,
		},
		{
			ID:          "7",
			Name:        "Travel Insurance",
			Description: "Comprehensive coverage for your journey",
			Price:       domain.NewMoney(35, cur),
			Icon:        domain.IconShieldCheck,
		},
		{
			ID:          "8",
			Name:        "Fast Track Security",
			Description: "Skip the queues with fast track security access",
			Price:       domain.NewMoney(20, cur),
			Icon:        domain.IconZap,
		},
	}
}
