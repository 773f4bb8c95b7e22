package flow

// Output экран или изображение для отправки пользователю
type Output interface {
	isOutput()
}

// Button кнопка с данными или внешней ссылкой
type Button struct {
	Label string
	Data  string
	URL   string
}

// Screen текст в разметке HTML с раскладкой кнопок.
// Edit означает, что экран заменяет сообщение, на кнопку которого нажали.
type Screen struct {
	Text    string
	Buttons [][]Button
	Edit    bool
}

// Photo изображение с подписью
type Photo struct {
	Image    []byte
	Caption  string
	FileName string
}

func (Screen) isOutput() {}
func (Photo) isOutput()  {}

func dataButton(label, data string) Button {
	return Button{Label: label, Data: data}
}

func urlButton(label, url string) Button {
	return Button{Label: label, URL: url}
}
