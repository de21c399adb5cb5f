// Package catalog - Site pages
// Titles and descriptions are the Russian SEO metadata injected by the
// static generator.
package catalog

func ogImage(slug string) string {
	return SiteURL + "/og-images/" + slug + ".svg"
}

func info(slug, path, title, description string) Entry {
	return Entry{Slug: slug, Path: path, Kind: KindInfo, Title: title, Description: description, OGImage: ogImage(slug), Prerender: true}
}

func calculator(group Group, slug, title, description string) Entry {
	return Entry{
		Slug:        slug,
		Path:        "/calculator/" + slug,
		Kind:        KindCalculator,
		Group:       group,
		Title:       title,
		Description: description,
		OGImage:     ogImage(slug),
		Prerender:   true,
	}
}

// clientOnly is a calculator rendered by the client alone
func clientOnly(e Entry) Entry {
	e.Prerender = false
	return e
}

// RegisterInfoPages populates the catalog with the static content pages
func RegisterInfoPages(c *Catalog) {
	c.Register(info("home", "/",
		"Calk.KG - Калькуляторы Кыргызстана",
		"Более 25 бесплатных калькуляторов для жителей Кыргызстана: зарплата, кредиты, ипотека, налоги, коммунальные услуги. Точные расчеты по законам КР."))
	c.Register(info("about", "/about",
		"О проекте Calk.KG - Калькуляторы для Кыргызстана",
		"Calk.KG - бесплатный сервис онлайн-калькуляторов для жителей Кыргызстана. Узнайте о нашей миссии, команде и как мы помогаем с финансовыми расчетами."))
	c.Register(info("privacy-policy", "/privacy-policy",
		"Политика конфиденциальности - Calk.KG",
		"Политика конфиденциальности Calk.KG: как мы собираем, используем и защищаем ваши данные при использовании калькуляторов."))
	c.Register(info("terms-of-service", "/terms-of-service",
		"Условия использования - Calk.KG",
		"Условия использования сервиса Calk.KG: правила пользования онлайн-калькуляторами, ограничения ответственности."))
	c.Register(info("sitemap", "/sitemap",
		"Карта сайта - Calk.KG",
		"Полный список всех калькуляторов и страниц на Calk.KG. Найдите нужный калькулятор быстро."))
	c.Register(info("contact", "/contact",
		"Контакты - Calk.KG",
		"Свяжитесь с командой Calk.KG. Обратная связь, предложения и вопросы по работе калькуляторов."))
	c.Register(info("disclaimer", "/disclaimer",
		"Отказ от ответственности - Calk.KG",
		"Отказ от ответственности Calk.KG: ограничения использования онлайн-калькуляторов, информационный характер расчетов, рекомендации по консультации со специалистами."))
}

// RegisterCalculators populates the catalog with every calculator
func RegisterCalculators(c *Catalog) {
	c.Register(calculator(GroupPayroll, "salary",
		"Калькулятор заработной платы КР 2025 - Расчет зарплаты \"на руки\"",
		"Рассчитайте чистую зарплату \"на руки\" с учетом всех налогов и взносов в Кыргызстане. Подоходный налог 10%, соц. отчисления, пенсионные взносы."))
	c.Register(calculator(GroupTaxes, "single-tax",
		"Единый налог для ИП в Кыргызстане 2025 - Калькулятор",
		"Расчет единого налога для индивидуальных предпринимателей в КР. Ставки по видам деятельности, льготы, сроки уплаты."))
	c.Register(calculator(GroupTaxes, "property-tax",
		"Налог на недвижимость в Кыргызстане 2025 - Калькулятор",
		"Расчет годового налога на жилые дома и квартиры в Кыргызстане. Ставки по регионам, льготы для пенсионеров."))
	c.Register(calculator(GroupPayroll, "social-fund",
		"Отчисления в Социальный фонд КР 2025 - Калькулятор",
		"Детальный расчет социальных взносов работника и работодателя в Кыргызстане. Пенсионные, страховые отчисления."))
	c.Register(calculator(GroupPayroll, "pension",
		"Пенсионный калькулятор Кыргызстана 2025 - Расчет пенсии",
		"Рассчитайте будущую пенсию в Кыргызстане. Базовая, страховая и накопительная части пенсии по новой формуле."))
	c.Register(calculator(GroupLending, "loan",
		"Кредитный калькулятор Кыргызстан 2025 - Расчет кредита",
		"Рассчитайте ежемесячный платеж по кредиту в банках Кыргызстана. Аннуитетный и дифференцированный платеж, переплата."))
	c.Register(calculator(GroupLending, "mortgage",
		"Ипотечный калькулятор Кыргызстан 2025 - Расчет ипотеки",
		"Расчет ипотеки в банках Кыргызстана. График платежей, первоначальный взнос, процентные ставки, переплата."))
	c.Register(calculator(GroupLending, "auto-loan",
		"Автокредит в Кыргызстане 2025 - Калькулятор",
		"Расчет автокредита в банках Кыргызстана. Ежемесячный платеж, первоначальный взнос, сравнение условий банков."))
	c.Register(calculator(GroupLending, "deposit",
		"Депозитный калькулятор Кыргызстан 2025 - Расчет вклада",
		"Рассчитайте доходность депозита в банках Кыргызстана. Капитализация процентов, сравнение ставок банков."))
	c.Register(calculator(GroupTaxes, "customs",
		"Растаможка авто в Кыргызстане 2025 - Калькулятор",
		"Рассчитайте стоимость растаможки автомобиля в Кыргызстане. Пошлины, НДС, акциз, утилизационный сбор."))
	c.Register(calculator(GroupUtilities, "electricity",
		"Калькулятор электроэнергии Кыргызстан 2025 - Тарифы",
		"Расчет стоимости электроэнергии по тарифам Кыргызстана. Дневной и ночной тариф, социальная норма."))
	c.Register(calculator(GroupUtilities, "water",
		"Калькулятор воды и канализации КР 2025 - Тарифы",
		"Расчет платы за холодную воду и канализацию в Кыргызстане. Тарифы по городам и районам."))
	c.Register(calculator(GroupUtilities, "heating",
		"Калькулятор отопления и горячей воды КР 2025",
		"Расчет стоимости отопления и горячего водоснабжения в Кыргызстане. Тарифы по площади квартиры."))
	c.Register(calculator(GroupUtilities, "gas",
		"Калькулятор газа Кыргызстан 2025 - Тарифы",
		"Расчет платы за природный газ в Кыргызстане. Сезонные тарифы, лимиты потребления, льготы."))
	c.Register(calculator(GroupFamily, "alimony",
		"Калькулятор алиментов Кыргызстан 2025",
		"Расчет размера алиментов на детей по законодательству Кыргызстана. Процент от дохода, фиксированная сумма."))
	c.Register(calculator(GroupFamily, "family-benefit",
		"Пособие \"үй-бүлөгө көмөк\" 2025 - Калькулятор",
		"Проверьте право на получение государственного пособия в Кыргызстане и рассчитайте его размер."))
	c.Register(calculator(GroupTaxes, "patent",
		"Стоимость патента ИП в Кыргызстане 2025 - Калькулятор",
		"Расчет стоимости патента для ИП по видам деятельности и регионам Кыргызстана."))
	c.Register(calculator(GroupHousehold, "traffic-fines",
		"Штрафы ПДД Кыргызстан 2025 - Справочник",
		"Полный справочник штрафов за нарушения ПДД в Кыргызстане. Актуальные размеры штрафов."))
	c.Register(calculator(GroupFamily, "zakat",
		"Калькулятор закята 2025 - Расчет",
		"Расчет ежегодного религиозного пожертвования (закят) согласно исламским принципам."))
	c.Register(calculator(GroupTaxes, "taxi-tax",
		"Налог для таксистов и курьеров КР 2025",
		"Расчет подоходного налога 1% для работающих через агрегаторы (Яндекс, Максим, Glovo)."))
	c.Register(calculator(GroupHousehold, "passport",
		"Стоимость паспорта КР 2025 - Калькулятор",
		"Расчет стоимости и сроков оформления паспорта гражданина Кыргызстана."))
	c.Register(calculator(GroupTaxes, "tourist-fee",
		"Туристический сбор Кыргызстан 2025 - Калькулятор",
		"Расчет размера туристического сбора для гостиниц и туристов в городах Кыргызстана."))
	c.Register(calculator(GroupHousehold, "sewing-cost",
		"Себестоимость швейного изделия - Калькулятор",
		"Расчет полной себестоимости швейного изделия с учетом материалов, фурнитуры и работы."))
	c.Register(calculator(GroupHousehold, "housing",
		"Калькулятор стоимости жилья в Кыргызстане 2025",
		"Оцените стоимость покупки или строительства жилья в городах Кыргызстана."))
	c.Register(calculator(GroupHousehold, "wedding",
		"Калькулятор тоя (свадьбы) 2025 - Бюджет",
		"Спланируйте бюджет на свадьбу, юбилей и другие торжества с учетом всех расходов в Кыргызстане."))
	c.Register(calculator(GroupHousehold, "calorie",
		"Калькулятор калорий (КБЖУ) 2025",
		"Расчет суточной нормы калорий, белков, жиров и углеводов для похудения или набора массы."))

	// Live-rate pages are not prerendered
	c.Register(clientOnly(calculator(GroupCurrency, "currency-exchange",
		"Конвертер валют НБКР 2025 - Курсы валют Кыргызстан",
		"Актуальные курсы доллара, евро, рубля, тенге и юаня к сому по данным Национального банка КР.")))
	c.Register(clientOnly(calculator(GroupCurrency, "money-transfer",
		"Сравнение денежных переводов в Кыргызстан 2025",
		"Сравните комиссии и курсы систем денежных переводов: Золотая Корона, Контакт, Western Union и другие.")))
	c.Register(clientOnly(calculator(GroupHousehold, "mobile-tariffs",
		"Сравнение тарифов мобильной связи КР 2025",
		"Подберите выгодный тариф Megacom, Beeline или O! по вашему расходу минут, SMS и интернета.")))
}
