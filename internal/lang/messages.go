package lang

type MessageID string

const (
	StartGreetingMsgID  MessageID = "start_greeting"
	TryLuckButtonMsgID  MessageID = "try_luck_button"
	HelpMsgID           MessageID = "help"
	MenuPromptMsgID     MessageID = "menu_prompt"
	UnknownCommandMsgID MessageID = "unknown_command"

	HistoryButtonMsgID MessageID = "history_button"
	TypesButtonMsgID   MessageID = "types_button"
	BrewingButtonMsgID MessageID = "brewing_button"
	CultureButtonMsgID MessageID = "culture_button"

	HistoryMsgID          MessageID = "history"
	TypesMsgID            MessageID = "types"
	BrewingMsgID          MessageID = "brewing"
	CultureMsgID          MessageID = "culture"
	TopicUnavailableMsgID MessageID = "topic_unavailable"

	TastingHeaderMsgID MessageID = "tasting_header"
	TastingFooterMsgID MessageID = "tasting_footer"

	GreetingReplyMsgID MessageID = "greeting_reply"
	ThanksReplyMsgID   MessageID = "thanks_reply"
	FarewellReplyMsgID MessageID = "farewell_reply"
	IPAMsgID           MessageID = "ipa"
	LagerMsgID         MessageID = "lager"
	AleMsgID           MessageID = "ale"
	StoutMsgID         MessageID = "stout"
	PorterMsgID        MessageID = "porter"
	WheatMsgID         MessageID = "wheat"
	AlcoholMsgID       MessageID = "alcohol"
	SnackMsgID         MessageID = "snack"
	FallbackMsgID      MessageID = "fallback"
)

var messages = map[MessageID]map[string]string{
	StartGreetingMsgID: {
		"ru": "Привет, сталкер. Замотался? Присядь, выпей кружечку холодненького. Сейчас сделаем тебе случайную подборку из 6 зелий.",
	},
	TryLuckButtonMsgID: {
		"ru": "Испытай удачу, сталкер",
	},
	HelpMsgID: {
		"ru": "Вот команды, которые я понимаю:\n" +
			"/start - Начать разговор\n" +
			"/help - Показать это сообщение\n" +
			"/menu - Показать меню опций\n\n" +
			"Также вы можете просто написать ваш вопрос о пиве, и я постараюсь ответить!",
	},
	MenuPromptMsgID: {
		"ru": "Выберите тему, которая вас интересует:",
	},
	UnknownCommandMsgID: {
		"ru": "Извините, я не знаю такой команды. Попробуйте /help.",
	},

	HistoryButtonMsgID: {"ru": "История пива"},
	TypesButtonMsgID:   {"ru": "Виды пива"},
	BrewingButtonMsgID: {"ru": "Процесс варки"},
	CultureButtonMsgID: {"ru": "Культура пития"},

	HistoryMsgID: {
		"ru": "История пива насчитывает тысячи лет. Первые упоминания о пивоварении относятся к древним цивилизациям Месопотамии и Египта. Пиво было важным продуктом питания и частью культуры многих народов.",
	},
	TypesMsgID: {
		"ru": "Основные виды пива:\n- Эль (верховое брожение)\n- Лагер (низовое брожение)\n- Портер и стаут\n- Пшеничное пиво\n- IPA (India Pale Ale)\n- Ламбик (спонтанное брожение)\nКаждый вид имеет свои особенности вкуса, аромата и технологии производства.",
	},
	BrewingMsgID: {
		"ru": "Основные этапы пивоварения:\n1. Соложение зерна\n2. Затирание и фильтрация\n3. Варка сусла с хмелем\n4. Охлаждение сусла\n5. Ферментация (брожение)\n6. Созревание пива\n7. Фильтрация и розлив\nКаждый этап критически важен для качества готового продукта.",
	},
	CultureMsgID: {
		"ru": "Культура потребления пива различается по странам. В Германии традиционны пивные фестивали, такие как Октоберфест. В Бельгии каждый сорт пива подается в специальном бокале. В Чехии пиво - национальное достояние. Ответственное потребление и знание традиций обогащает опыт наслаждения этим напитком.",
	},
	TopicUnavailableMsgID: {
		"ru": "Извините, информация по этой теме временно недоступна.",
	},

	TastingHeaderMsgID: {
		"ru": "Твой выбор, сталкер 🍺:\n\n",
	},
	TastingFooterMsgID: {
		"ru": "\nНе дай Зоне себя победить! ☢️",
	},

	GreetingReplyMsgID: {
		"ru": "Привет! Чем могу помочь?",
	},
	ThanksReplyMsgID: {
		"ru": "Всегда рад помочь!",
	},
	FarewellReplyMsgID: {
		"ru": "До новых встреч! Надеюсь, был полезен.",
	},
	IPAMsgID: {
		"ru": "India Pale Ale (IPA) - это сорт пива с ярко выраженным хмелевым вкусом и ароматом. " +
			"Первоначально был создан для экспорта в Индию, отсюда и название. " +
			"Характеризуется высоким содержанием хмеля, который использовался как консервант.",
	},
	LagerMsgID: {
		"ru": "Лагер - это пиво низового брожения, которое выдерживается при низких температурах. " +
			"Процесс ферментации происходит в нижней части чана, отсюда и название 'низовое'. " +
			"Лагеры обычно более легкие и освежающие, чем эли.",
	},
	AleMsgID: {
		"ru": "Эль - это пиво верхового брожения. Процесс ферментации происходит при более высоких температурах, " +
			"чем у лагера, и дрожжи работают в верхней части чана. Эли обычно имеют более насыщенный, " +
			"фруктовый вкус и аромат.",
	},
	StoutMsgID: {
		"ru": "Стаут - это тёмное пиво, приготовленное с использованием жареного ячменя. " +
			"Имеет богатый, плотный вкус с нотами кофе, шоколада и солода. " +
			"Изначально термин 'стаут' означал просто 'крепкий пиво'.",
	},
	PorterMsgID: {
		"ru": "Портер - это тёмное пиво, предшественник стаута. Получил популярность среди " +
			"лондонских носильщиков (porter в переводе с английского - носильщик). " +
			"Характеризуется сложным вкусом с нотами карамели, шоколада и иногда лёгкой дымностью.",
	},
	WheatMsgID: {
		"ru": "Пшеничное пиво производится с использованием значительной доли пшеничного солода. " +
			"Обычно легкое, освежающее, с высокой карбонизацией. Немецкие сорта (Weissbier) часто имеют " +
			"ноты банана и гвоздики из-за особых штаммов дрожжей.",
	},
	AlcoholMsgID: {
		"ru": "Содержание алкоголя в пиве обычно составляет от 3% до 12%. " +
			"Легкое пиво может содержать 3-4%, обычные лагеры - около 5%, " +
			"крафтовые сорта часто имеют 6-9%, а некоторые специальные сорта могут " +
			"достигать 12% и выше. Помните о ответственном потреблении!",
	},
	SnackMsgID: {
		"ru": "Традиционные закуски к пиву зависят от страны и сорта пива. " +
			"К лагерам хорошо подходят снеки, орешки, легкие сыры. К элям - более острые " +
			"и пикантные закуски. К стаутам - шоколад и десерты. " +
			"В Германии популярны колбаски и претцели, в Бельгии - сыры и морепродукты.",
	},
	FallbackMsgID: {
		"ru": "Извините, я не совсем понял ваш вопрос. Попробуйте сформулировать иначе или " +
			"воспользуйтесь командой /menu, чтобы увидеть доступные темы.",
	},
}
