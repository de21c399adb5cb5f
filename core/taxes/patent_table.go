package taxes

// DefaultPatents lists monthly patent costs by region, in display order
var DefaultPatents = []PatentRegion{
	{
		ID:      "bishkek",
		NameKey: "region_bishkek",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(3000)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(2500)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(1500)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(5000)},
			{ID: "car-wash-1", NameKey: "activity_car_wash_1", MonthlyCost: num(4000)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(2200)},
			{ID: "photo-services-1", NameKey: "activity_photo_services_1", MonthlyCost: num(2800)},
			{ID: "computer-repair-1", NameKey: "activity_computer_repair_1", MonthlyCost: num(3500)},
			{ID: "auto-repair-1", NameKey: "activity_auto_repair_1", MonthlyCost: num(6000)},
			{ID: "catering-small", NameKey: "activity_catering_small", MonthlyCost: num(8000)},
			{ID: "cargo-transportation", NameKey: "activity_cargo_transportation", MonthlyCost: num(3500)},
			{ID: "tutoring", NameKey: "activity_tutoring", MonthlyCost: num(2000)},
			{ID: "apartment-rental", NameKey: "activity_apartment_rental", MonthlyCost: num(1800)},
			{ID: "electronics-repair", NameKey: "activity_electronics_repair", MonthlyCost: num(3200)},
		},
	},
	{
		ID:      "osh",
		NameKey: "region_osh",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(2000)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1800)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(1000)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(3500)},
			{ID: "car-wash-1", NameKey: "activity_car_wash_1", MonthlyCost: num(2800)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1800)},
			{ID: "photo-services-1", NameKey: "activity_photo_services_1", MonthlyCost: num(2000)},
			{ID: "auto-repair-1", NameKey: "activity_auto_repair_1", MonthlyCost: num(4500)},
			{ID: "catering-small", NameKey: "activity_catering_small", MonthlyCost: num(6000)},
			{ID: "cargo-transportation", NameKey: "activity_cargo_transportation", MonthlyCost: num(2800)},
			{ID: "tutoring", NameKey: "activity_tutoring", MonthlyCost: num(1500)},
			{ID: "apartment-rental", NameKey: "activity_apartment_rental", MonthlyCost: num(1400)},
			{ID: "electronics-repair", NameKey: "activity_electronics_repair", MonthlyCost: num(2500)},
			{ID: "computer-repair-1", NameKey: "activity_computer_repair_1", MonthlyCost: num(2800)},
		},
	},
	{
		ID:      "jalal-abad",
		NameKey: "region_jalal_abad",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1800)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1600)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(900)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(3200)},
			{ID: "car-wash-1", NameKey: "activity_car_wash_1", MonthlyCost: num(2500)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1600)},
			{ID: "auto-repair-1", NameKey: "activity_auto_repair_1", MonthlyCost: num(4200)},
			{ID: "cargo-transportation", NameKey: "activity_cargo_transportation", MonthlyCost: num(2600)},
			{ID: "tutoring", NameKey: "activity_tutoring", MonthlyCost: num(1400)},
			{ID: "apartment-rental", NameKey: "activity_apartment_rental", MonthlyCost: num(1300)},
			{ID: "electronics-repair", NameKey: "activity_electronics_repair", MonthlyCost: num(2300)},
			{ID: "computer-repair-1", NameKey: "activity_computer_repair_1", MonthlyCost: num(2700)},
			{ID: "photo-services-1", NameKey: "activity_photo_services_1", MonthlyCost: num(1900)},
			{ID: "catering-small", NameKey: "activity_catering_small", MonthlyCost: num(5500)},
		},
	},
	{
		ID:      "karakol",
		NameKey: "region_karakol",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1700)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1500)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(800)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(3000)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1500)},
			{ID: "auto-repair-1", NameKey: "activity_auto_repair_1", MonthlyCost: num(4000)},
		},
	},
	{
		ID:      "tokmok",
		NameKey: "region_tokmok",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1600)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1400)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(750)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2800)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1400)},
		},
	},
	{
		ID:      "naryn",
		NameKey: "region_naryn",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1500)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1300)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(700)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2500)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1300)},
		},
	},
	{
		ID:      "talas",
		NameKey: "region_talas",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1400)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1200)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(650)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2200)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1200)},
		},
	},
	{
		ID:      "batken",
		NameKey: "region_batken",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1300)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1100)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(600)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2000)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1100)},
		},
	},
	{
		ID:      "osh-region",
		NameKey: "region_osh_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1500)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1400)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2800)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1300)},
		},
	},
	{
		ID:      "jalal-abad-region",
		NameKey: "region_jalal_abad_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1400)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1300)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2600)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1200)},
		},
	},
	{
		ID:      "issyk-kul-region",
		NameKey: "region_issyk_kul_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1600)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1500)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(3000)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1400)},
		},
	},
	{
		ID:      "naryn-region",
		NameKey: "region_naryn_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1300)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1200)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2400)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1100)},
		},
	},
	{
		ID:      "talas-region",
		NameKey: "region_talas_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1200)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1100)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(2200)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1000)},
		},
	},
	{
		ID:      "chui-region",
		NameKey: "region_chui_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(2200)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(2000)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(4000)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(1800)},
			{ID: "cargo-transportation", NameKey: "activity_cargo_transportation", MonthlyCost: num(3000)},
			{ID: "tutoring", NameKey: "activity_tutoring", MonthlyCost: num(1700)},
			{ID: "apartment-rental", NameKey: "activity_apartment_rental", MonthlyCost: num(1600)},
			{ID: "electronics-repair", NameKey: "activity_electronics_repair", MonthlyCost: num(2800)},
			{ID: "computer-repair-1", NameKey: "activity_computer_repair_1", MonthlyCost: num(3200)},
			{ID: "car-wash-1", NameKey: "activity_car_wash_1", MonthlyCost: num(3500)},
			{ID: "auto-repair-1", NameKey: "activity_auto_repair_1", MonthlyCost: num(5500)},
			{ID: "photo-services-1", NameKey: "activity_photo_services_1", MonthlyCost: num(2500)},
			{ID: "shoe-repair-1", NameKey: "activity_shoe_repair_1", MonthlyCost: num(1400)},
			{ID: "catering-small", NameKey: "activity_catering_small", MonthlyCost: num(7000)},
		},
	},
	{
		ID:      "batken-region",
		NameKey: "region_batken_region",
		Activities: []PatentActivity{
			{ID: "hairdresser-1", NameKey: "activity_hairdresser_1", MonthlyCost: num(1100)},
			{ID: "taxi-1", NameKey: "activity_taxi_1", MonthlyCost: num(1000)},
			{ID: "market-trade-1", NameKey: "activity_market_trade_1", MonthlyCost: num(1800)},
			{ID: "tailoring-1", NameKey: "activity_tailoring_1", MonthlyCost: num(900)},
		},
	},
}
