package flow

import (
	"strconv"
	"strings"
)

// Теги кнопок
const (
	TagPhase             = "phase"
	TagFullTest          = "full_test"
	TagAnswer            = "answer"
	TagCheckSubscription = "check_subscription"
	TagRestart           = "restart"
	TagAbout             = "about"
	TagBackToResults     = "back_to_results"
)

// Команды
const (
	CommandStart = "start"
	CommandHelp  = "help"
)

// Action входящее действие пользователя: Command, ButtonPress или TextMessage
type Action interface {
	isAction()
}

// Command команда вида /name args
type Command struct {
	Name string
	Args []string
}

// ButtonPress нажатие инлайн-кнопки. Данные вида tag или tag_<int>.
type ButtonPress struct {
	Tag    string
	Arg    int
	HasArg bool
	Raw    string
}

// TextMessage произвольный текст
type TextMessage struct {
	Body string
}

func (Command) isAction()     {}
func (ButtonPress) isAction() {}
func (TextMessage) isAction() {}

// ParseButton разбирает данные кнопки. Префикс \f от telebot отбрасывается.
func ParseButton(raw string) ButtonPress {
	data := strings.TrimSpace(raw)
	data = strings.TrimPrefix(data, "\f")
	data = strings.TrimSpace(data)

	press := ButtonPress{Tag: data, Raw: raw}
	i := strings.LastIndexByte(data, '_')
	if i <= 0 || i == len(data)-1 {
		return press
	}

	arg, err := strconv.Atoi(data[i+1:])
	if err != nil {
		return press
	}
	press.Tag = data[:i]
	press.Arg = arg
	press.HasArg = true
	return press
}

// ParseCommand разбирает текст вида "/start@bot arg1 arg2".
// false, если текст не является командой.
func ParseCommand(text string) (Command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}

	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return Command{}, false
	}

	name := fields[0]
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return Command{}, false
	}
	return Command{Name: strings.ToLower(name), Args: fields[1:]}, true
}
