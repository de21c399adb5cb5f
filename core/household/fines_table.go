package household

// FineCategories lists fine categories in display order
var FineCategories = []string{
	"speed",
	"traffic_rules",
	"parking",
	"documents",
	"alcohol",
	"devices",
	"seatbelt",
	"road_marking",
	"plates",
	"passengers",
	"cargo",
	"overtaking",
	"lights",
	"railway",
	"drugs",
	"accident",
	"signals",
	"motorcycle",
	"pedestrian",
}

// DefaultFines is the traffic code fine catalog, som
var DefaultFines = []Fine{
	fine("speed_10_20", "speed", 1500, "Ст. 187 ч. 1", "discount_70", "превышение", "скорость", "10-20", "км/ч"),
	fine("speed_20_40", "speed", 3000, "Ст. 187 ч. 2", "discount_70", "превышение", "скорость", "20-40", "км/ч"),
	fine("speed_40_60", "speed", 5500, "Ст. 187 ч. 3", "discount_70", "превышение", "скорость", "40-60", "км/ч"),
	fine("speed_60_plus", "speed", 8000, "Ст. 187 ч. 4", "no_discount_license_6mo", "превышение", "скорость", "60", "км/ч", "лишение"),
	fine("red_light", "traffic_rules", 5000, "Ст. 186 ч. 1", "discount_70", "светофор", "красный", "запрещающий", "сигнал"),
	fine("oncoming_lane", "traffic_rules", 15000, "Ст. 188 ч. 3", "no_discount_license_4_6mo", "встречная", "полоса", "выезд", "лобовое"),
	fine("turn_sign_violation", "traffic_rules", 2000, "Ст. 184 ч. 2", "discount_70", "поворот", "разворот", "знак", "запрет"),
	fine("pedestrian_crossing", "traffic_rules", 4000, "Ст. 185 ч. 1", "discount_70", "пешеход", "переход", "зебра", "преимущество"),
	fine("parking_prohibited", "parking", 2500, "Ст. 183 ч. 1", "discount_70_tow", "парковка", "стоянка", "остановка", "запрещенное", "место"),
	fine("parking_disabled", "parking", 6000, "Ст. 183 ч. 3", "discount_70_tow_mandatory", "инвалид", "парковка", "место", "остановка"),
	fine("parking_sidewalk", "parking", 4000, "Ст. 183 ч. 2", "discount_70_tow", "тротуар", "парковка", "стоянка", "пешеходная", "зона"),
	fine("no_license", "documents", 10000, "Ст. 179 ч. 1", "no_discount_driving_ban", "права", "удостоверение", "без", "документы"),
	fine("expired_license", "documents", 4000, "Ст. 179 ч. 2", "discount_70", "просроченные", "права", "срок", "удостоверение"),
	fine("no_insurance", "documents", 3500, "Ст. 180 ч. 1", "discount_70", "страховка", "полис", "ОГПО", "ВТС", "страхование"),
	fine("faulty_vehicle", "documents", 2500, "Ст. 181 ч. 1", "discount_70_driving_ban_repair", "неисправность", "техническое", "состояние", "тормоза", "свет"),
	fine("alcohol_under_08", "alcohol", 25000, "Ст. 189 ч. 1", "no_discount_license_1_5_2y", "алкоголь", "опьянение", "промилле", "0.8", "пьяный"),
	fine("alcohol_over_08", "alcohol", 30000, "Ст. 189 ч. 2", "no_discount_license_2_3y", "алкоголь", "опьянение", "промилле", "0.8", "пьяный", "тяжелое"),
	fine("alcohol_refusal", "alcohol", 30000, "Ст. 189 ч. 3", "no_discount_license_1_5_2y", "отказ", "медицинское", "освидетельствование", "алкотестер"),
	fine("phone_driving", "devices", 1500, "Ст. 182 ч. 1", "discount_70", "телефон", "мобильный", "разговор", "hands-free", "гарнитура"),
	fine("no_seatbelt", "seatbelt", 1000, "Ст. 182 ч. 2", "discount_70", "ремень", "безопасность", "непристегнутый", "водитель"),
	fine("no_child_seat", "seatbelt", 5000, "Ст. 182 ч. 4", "discount_70", "дети", "автокресло", "удерживающие", "устройства", "ребенок"),
	fine("solid_line", "road_marking", 3000, "Ст. 184 ч. 1", "discount_70", "сплошная", "линия", "разметка", "пересечение"),
	fine("shoulder_driving", "road_marking", 2000, "Ст. 184 ч. 3", "discount_70", "обочина", "движение", "край", "дороги"),
	fine("no_plates", "plates", 8000, "Ст. 180 ч. 2", "discount_70_driving_ban", "номера", "регистрационные", "знаки", "отсутствие"),
	fine("fake_plates", "plates", 15000, "Ст. 180 ч. 3", "no_discount_confiscation", "подложные", "поддельные", "измененные", "номера"),
	fine("passenger_rules", "passengers", 3000, "Ст. 191 ч. 1", "discount_70", "пассажиры", "перевозка", "правила", "нарушение"),
	fine("cargo_overload_20", "cargo", 4000, "Ст. 192 ч. 1", "discount_70", "перегруз", "масса", "груз", "20%", "превышение"),
	fine("cargo_overload_20_plus", "cargo", 8000, "Ст. 192 ч. 2", "discount_70_driving_ban_unload", "перегруз", "масса", "груз", "20%", "свыше"),
	fine("overtaking_prohibited", "overtaking", 6000, "Ст. 188 ч. 1", "discount_70", "обгон", "запрещенное", "место", "опережение"),
	fine("overtaking_crosswalk", "overtaking", 8000, "Ст. 188 ч. 2", "no_discount", "обгон", "пешеходный", "переход", "зебра"),
	fine("lights_daytime", "lights", 1000, "Ст. 182 ч. 3", "discount_70", "фары", "свет", "дневное", "время", "ближний"),
	fine("high_beam_city", "lights", 1500, "Ст. 182 ч. 5", "discount_70", "дальний", "свет", "населенный", "пункт", "город"),
	fine("railway_crossing", "railway", 12000, "Ст. 190 ч. 1", "no_discount_license_3_6mo", "железнодорожный", "переезд", "поезд", "шлагбаум"),
	fine("drugs", "drugs", 35000, "Ст. 189 ч. 4", "no_discount_license_2_3y", "наркотики", "наркотическое", "опьянение", "наркологический"),
	fine("leave_accident", "accident", 20000, "Ст. 193 ч. 1", "no_discount_license_1_1_5y", "ДТП", "оставление", "место", "авария", "скрылся"),
	fine("illegal_signals", "signals", 15000, "Ст. 194 ч. 1", "no_discount_confiscation", "спецсигналы", "мигалка", "сирена", "незаконное"),
	fine("motorcycle_no_helmet", "motorcycle", 2000, "Ст. 195 ч. 1", "discount_70", "мотоцикл", "шлем", "защита", "голова"),
	fine("pedestrian_wrong_place", "pedestrian", 500, "Ст. 196 ч. 1", "discount_70", "пешеход", "переход", "неустановленное", "место"),
	fine("pedestrian_red_light", "pedestrian", 1000, "Ст. 196 ч. 2", "discount_70", "пешеход", "красный", "светофор", "переход"),
}
