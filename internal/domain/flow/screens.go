package flow

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
)

func (m *Machine) welcomeScreen(edit bool) Screen {
	rows := make([][]Button, 0, m.bank.Len()+1)
	for i, p := range m.bank.Phases() {
		rows = append(rows, []Button{dataButton(p.Title, TagPhase+"_"+strconv.Itoa(i))})
	}
	rows = append(rows, []Button{dataButton(m.label(model.FullTestButtonKey), TagFullTest)})

	return Screen{Text: m.text(model.WelcomeKey), Buttons: rows, Edit: edit}
}

func (m *Machine) questionScreen(s *model.Session, edit bool) Screen {
	phase := m.bank.Phase(s.Phase)
	text := fmt.Sprintf("📝 <b>Тестирование фазы: %s</b>\n\nВопрос %d из %d:\n\n%s",
		html.EscapeString(phase.Title),
		s.Question+1,
		len(phase.Questions),
		html.EscapeString(phase.Questions[s.Question]),
	)

	return Screen{
		Text: text,
		Buttons: [][]Button{{
			dataButton(m.label(model.AgreeButtonKey), TagAnswer+"_1"),
			dataButton(m.label(model.DisagreeButtonKey), TagAnswer+"_0"),
		}},
		Edit: edit,
	}
}

func (m *Machine) gateScreen(key string) Screen {
	return Screen{
		Text: m.text(key),
		Buttons: [][]Button{
			{urlButton(m.label(model.SubscribeButtonKey), m.cfg.ChannelLink)},
			{dataButton(m.label(model.CheckButtonKey), TagCheckSubscription)},
			{dataButton(m.label(model.RestartButtonKey), TagRestart)},
		},
		Edit: true,
	}
}

func (m *Machine) aboutScreen() Screen {
	return Screen{
		Text: m.text(model.AboutKey),
		Buttons: [][]Button{
			{dataButton(m.label(model.TakeTestButtonKey), TagRestart)},
			{dataButton(m.label(model.BackButtonKey), TagBackToResults)},
		},
		Edit: true,
	}
}

func (m *Machine) helpScreen() Screen {
	return Screen{Text: m.text(model.HelpKey)}
}

func (m *Machine) hintScreen() Screen {
	return Screen{Text: m.text(model.TextHintKey)}
}

func (m *Machine) expiredScreen() Screen {
	return Screen{
		Text:    m.text(model.SessionExpiredKey),
		Buttons: [][]Button{{dataButton(m.label(model.RestartButtonKey), TagRestart)}},
		Edit:    true,
	}
}

func (m *Machine) resultsScreen(res model.ScoreResult) Screen {
	return Screen{
		Text: m.resultsText(res),
		Buttons: [][]Button{
			{dataButton(m.label(model.RestartButtonKey), TagRestart)},
			{dataButton(m.label(model.AboutButtonKey), TagAbout)},
		},
		Edit: true,
	}
}

func (m *Machine) resultsText(res model.ScoreResult) string {
	var b strings.Builder
	b.WriteString("📊 <b>Результаты диагностики эмоционального выгорания</b>\n\n")

	var single *model.PhaseScore
	for i, p := range res.Phases {
		name := html.EscapeString(p.Name)
		if !p.Completed {
			fmt.Fprintf(&b, "🔸 <b>%s:</b> не пройдена\n\n", name)
			continue
		}
		single = &res.Phases[i]
		fmt.Fprintf(&b, "🔸 <b>%s:</b> %d/%d баллов\n", name, p.Score, p.Max)
		fmt.Fprintf(&b, "   %s\n\n", html.EscapeString(m.bank.Phase(p.Phase).Interpret(p.Level)))
	}

	switch {
	case !res.HasOverall:
		return strings.TrimRight(b.String(), "\n")
	case res.AllPhases:
		fmt.Fprintf(&b, "📈 <b>Общий балл:</b> %d/%d\n\n", res.Total, res.MaxTotal())
		fmt.Fprintf(&b, "%s <b>Общий результат:</b> %s уровень эмоционального выгорания", levelMark(res.Overall), levelWord(res.Overall))
	case res.Completed == 1:
		name := html.EscapeString(single.Name)
		fmt.Fprintf(&b, "📈 <b>Балл по фазе %s:</b> %d/%d\n\n", name, single.Score, single.Max)
		fmt.Fprintf(&b, "%s <b>Результат по фазе %s:</b> %s уровень", levelMark(res.Overall), name, levelWord(res.Overall))
	default:
		fmt.Fprintf(&b, "📈 <b>Общий балл по пройденным фазам:</b> %d/%d\n\n", res.Total, res.MaxTotal())
		fmt.Fprintf(&b, "%s <b>Средний результат:</b> %s уровень эмоционального выгорания", levelMark(res.Overall), levelWord(res.Overall))
	}

	b.WriteString("\n\n💡 <b>Рекомендации:</b>\n")
	b.WriteString(m.text(recommendationKey(res.Overall)))

	if !res.AllPhases {
		b.WriteString("\n\n")
		b.WriteString(m.text(model.PartialNoticeKey))
	}

	return b.String()
}

func recommendationKey(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return model.RecommendationHighKey
	case model.LevelMedium:
		return model.RecommendationMidKey
	default:
		return model.RecommendationLowKey
	}
}

func levelMark(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return "🚨"
	case model.LevelMedium:
		return "⚠️"
	default:
		return "✅"
	}
}

func levelWord(l model.Level) string {
	switch l {
	case model.LevelHigh:
		return "Высокий"
	case model.LevelMedium:
		return "Средний"
	default:
		return "Низкий"
	}
}
