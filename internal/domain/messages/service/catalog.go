package service

import "github.com/IT-Nick/burncheckbot/internal/domain/model"

// Тексты в разметке HTML. {channel_name} и {channel_link} подставляются при показе.
var catalog = map[string]string{
	model.WelcomeKey: `🔬 <b>Диагностика уровня эмоционального выгорания</b>

Этот тест создан на базе классической методики В.В. Бойко (1996), которая изначально разрабатывалась для оценки эмоционального выгорания у тех, кто работает с людьми.

Мы переписали её в живом, честном и понятном языке, ближе к тем, кому сейчас 27–35. Если ты чувствуешь усталость, апатию или просто не вывозишь, этот тест поможет понять, где ты находишься по шкале выгорания.

<b>Фазы выгорания:</b>

😰 <b>Напряжение</b> - Ты вроде держишься, но всё чаще ловишь себя на внутреннем напряге. Вроде ничего критичного, но внутри уже не спокойно. Раздражение, тревожность, недосказанная усталость: первые звоночки.

😤 <b>Резистенция</b> - Начинаешь закрываться. Всё и все начинают бесить. Притворяешься, что слушаешь, говоришь «окей» и в мыслях выключаешься. Хочется просто доработать день и исчезнуть. Идеи, цели, смыслы на паузе.

😵 <b>Истощение</b> - Всё. Пусто. Ни эмоций, ни сил. Утро начинается с вопроса: «Зачем всё это?». Ты просто существуешь на автомате. Энергии нет даже на удовольствие. Это не лень. Это ты выгорел.

Выбери подходящую для себя фазу или пройди полный тест:`,

	model.AboutKey: `📚 <b>Об основе методики</b>

Этот тест создан на базе классической методики В.В. Бойко (1996), которая изначально разрабатывалась для оценки эмоционального выгорания у тех, кто работает с людьми.

Мы переписали её в живом, честном и понятном языке, ближе к тем, кому сейчас 27–35.

🧨 <b>Три фазы выгорания (переведено с научного на человеческий)</b>

1️⃣ <b>Напряжение</b>: ты постоянно на взводе, всё раздражает, даже мелочи. Внутри тревога, усталость, чувство «я всё делаю не так».

2️⃣ <b>Резистенция</b>: начинается эмоциональный пофигизм. Люди бесят, общение утомляет, работа как на автопилоте.

3️⃣ <b>Истощение</b>: просто пусто. Эмоции выжжены, хочется выключиться от всех. Даже простые вещи становятся неподъёмными.

📊 <b>Как читать результат:</b>

0–3 балла: фаза пока не ярко выражена

4–6 баллов: фаза формируется

7–10 баллов: фаза уже включена, пора принимать меры

<b>Источник:</b> В.В. Бойко, «Синдром эмоционального выгорания в профессиональном общении», 1996 (адаптировано под реальности 30-летних).`,

	model.HelpKey: `🤖 <b>Команды бота:</b>

/start - Начать диагностику эмоционального выгорания
/help - Показать эту справку

📝 <b>Как использовать:</b>
1. Нажмите /start для начала тестирования
2. Выберите фазу или пройдите полный тест
3. Отвечайте на вопросы "Согласен" или "Не согласен"
4. Получите подробную интерпретацию результатов

💡 <b>Важно:</b> Отвечайте честно, как вы действительно себя чувствуете в последнее время.`,

	model.NamePromptKey: "Напиши свое Фамилию и Имя, они нужны для генерации персонализированного подарка тебе за прохождение теста.\n" +
		"Мы не собираем и не храним твои данные.\n\n" +
		"Пожалуйста, введи Фамилию и Имя (например: Иванов Иван):",

	model.NameRetryKey: "Пожалуйста, введите Фамилию и Имя через пробел.",

	model.SubscriptionRequestKey: `🎯 <b>Почти готово! Остался последний шаг</b>

📢 <b>Подпишитесь на наш канал</b> <i>"{channel_name}"</i>

💡 Там вы найдете:
• Мой личный опыт кризиса 30
• То что помогает мне жить жизнь без стресса
• Нейронки, которые облегчают мне жизнь
• Немного крипты

После подписки вы сразу получите результаты вашего теста!`,

	model.SubscriptionMissingKey: `⚠️ <b>Подписка не найдена</b>

Пожалуйста, убедитесь что вы:
1. Перешли по ссылке на канал
2. Нажали кнопку "Подписаться"
3. Дождались подтверждения подписки

Затем нажмите "✅ Я подписался, показать результаты"

Если у вас возникли проблемы, попробуйте:
• Перезапустить Telegram
• Проверить интернет-соединение
• Обратиться в поддержку`,

	model.MalformedAnswerKey: "⚠️ Некорректный ответ. Пожалуйста, начните тест заново с /start.",
	model.UnexpectedErrorKey: "⚠️ Произошла непредвиденная ошибка. Попробуйте еще раз или начните с /start.",
	model.SessionExpiredKey:  "⌛ Сессия устарела или бот был перезапущен. Начните тест заново.",
	model.TextHintKey:        "Я понимаю только кнопки под сообщениями. Чтобы начать тест, нажмите /start, а для справки /help.",

	model.CertificateCaptionKey: "🏆 Ваша персональная грамота за прохождение теста! Сохрани её на память или поделись с друзьями.",

	model.PartialNoticeKey: `⚠️ <b>Важно:</b>
Ты прошёл только часть теста. Для более точной диагностики рекомендуется пройти полный тест из 30 вопросов.

🔍 <b>Полный тест включает:</b>
• 10 вопросов на фазу «Напряжение»
• 10 вопросов на фазу «Резистенция»
• 10 вопросов на фазу «Истощение»

Это даст более точную картину твоего эмоционального состояния.`,

	model.RecommendationLowKey: `✅ <b>Низкий уровень эмоционального выгорания:</b>
Ты держишься молодцом.
Судя по результатам, ты пока не на грани, но не забывай: ресурс конечен. Даже если ты не выгораешь, усталость накапливается незаметно.

Совет:
Меняй контекст, пробуй новое, переключай внимание. Лучше отдыхать на опережение, чем потом собирать себя по кускам.

👉 Я пишу об этом в канале <a href="{channel_link}">{channel_name}</a>: как сохранять интерес, энергию и не закиснуть.`,

	model.RecommendationMidKey: `⚠️ <b>Средний уровень эмоционального выгорания:</b>
Ты в зоне риска.
Скорее всего, ты замечаешь раздражительность, усталость, прокрастинацию. Это не «просто лень», это сигнал, что ты выдыхаешься.

Совет:
Остановись. Переключи внимание. Разгрузи голову новыми темами, средой, впечатлениями. Иногда нужно не усилие, а выход из круга.

👉 В <a href="{channel_link}">{channel_name}</a> я как раз об этом: как не потерять себя в выгорании, где брать энергию, как менять мышление. Залетай, это важно.`,

	model.RecommendationHighKey: `🚨 <b>Высокий уровень эмоционального выгорания:</b>
Ты перегорел.
Это уже не просто усталость. Выгорание влияет на тело, психику, интерес к жизни. Само не пройдёт. Нужно осознанно перезагружаться.

Совет:
Не дави на себя. Сейчас не время «взять себя в руки», время поменять ритм и вложиться в восстановление. Новое знание, смена фокуса, простые переключения могут стать спасением.

👉 В <a href="{channel_link}">{channel_name}</a> я делюсь личным опытом, инструментами и мыслями, которые помогают выйти из этого состояния`,

	model.AgreeButtonKey:     "✅ Согласен",
	model.DisagreeButtonKey:  "❌ Не согласен",
	model.FullTestButtonKey:  "📊 Пройти полный тест",
	model.RestartButtonKey:   "🔄 Пройти тест заново",
	model.AboutButtonKey:     "ℹ️ О методике",
	model.BackButtonKey:      "⬅️ Назад к результатам",
	model.CheckButtonKey:     "✅ Я подписался, показать результаты",
	model.SubscribeButtonKey: "📢 Подписаться на {channel_name}",
	model.TakeTestButtonKey:  "🔄 Пройти тест",
}
