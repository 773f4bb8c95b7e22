package flow

import (
	"context"
	"fmt"
	"html"
	"strings"
	"sync"
	"time"

	"github.com/IT-Nick/burncheckbot/internal/domain/model"
	"github.com/IT-Nick/burncheckbot/internal/domain/questions"
	"github.com/IT-Nick/burncheckbot/internal/domain/scoring"
	"github.com/IT-Nick/burncheckbot/internal/domain/sessions"
	"github.com/rs/zerolog"
)

const lockStripes = 64

// CertificateFileName имя файла грамоты при отправке
const CertificateFileName = "certificate.png"

// Config настройки диалога
type Config struct {
	ChannelName           string
	ChannelLink           string
	SkipSubscriptionCheck bool
}

// Deps зависимости машины состояний. Archive и Observer необязательны.
type Deps struct {
	Bank         *questions.Bank
	Sessions     sessions.Store
	Ledger       Ledger
	Texts        Texts
	Membership   MembershipChecker
	Certificates CertificateRenderer
	Archive      Archive
	Observer     Observer
}

// Machine ведёт пользователя по экранам теста.
// Действия одного пользователя обрабатываются строго по одному.
type Machine struct {
	bank         *questions.Bank
	sessions     sessions.Store
	ledger       Ledger
	texts        Texts
	membership   MembershipChecker
	certificates CertificateRenderer
	archive      Archive
	observer     Observer

	cfg          Config
	placeholders *strings.Replacer
	labels       *strings.Replacer
	now          func() time.Time
	log          zerolog.Logger

	locks [lockStripes]sync.Mutex
}

// NewMachine создаёт машину состояний
func NewMachine(deps Deps, cfg Config, log zerolog.Logger) *Machine {
	observer := deps.Observer
	if observer == nil {
		observer = nopObserver{}
	}

	return &Machine{
		bank:         deps.Bank,
		sessions:     deps.Sessions,
		ledger:       deps.Ledger,
		texts:        deps.Texts,
		membership:   deps.Membership,
		certificates: deps.Certificates,
		archive:      deps.Archive,
		observer:     observer,
		cfg:          cfg,
		placeholders: strings.NewReplacer(
			"{channel_name}", html.EscapeString(cfg.ChannelName),
			"{channel_link}", html.EscapeString(cfg.ChannelLink),
		),
		// подписи кнопок уходят простым текстом
		labels: strings.NewReplacer(
			"{channel_name}", cfg.ChannelName,
			"{channel_link}", cfg.ChannelLink,
		),
		now: time.Now,
		log: log,
	}
}

// WithClock подменяет часы
func (m *Machine) WithClock(now func() time.Time) *Machine {
	m.now = now
	return m
}

// Handle обрабатывает одно действие пользователя и возвращает экраны для отправки
func (m *Machine) Handle(ctx context.Context, user model.User, action Action) ([]Output, error) {
	lock := &m.locks[uint64(user.ID)%lockStripes]
	lock.Lock()
	defer lock.Unlock()

	switch a := action.(type) {
	case Command:
		return m.handleCommand(ctx, user, a)
	case ButtonPress:
		return m.handleButton(ctx, user, a)
	case TextMessage:
		return m.handleText(ctx, user, a)
	default:
		return nil, fmt.Errorf("flow.Handle: unsupported action %T", action)
	}
}

// State текущее состояние пользователя. false, если сессии нет.
func (m *Machine) State(ctx context.Context, userID int64) (model.State, bool, error) {
	s, ok, err := m.sessions.Get(ctx, userID)
	if err != nil || !ok {
		return "", false, err
	}
	return s.State, true, nil
}

func (m *Machine) handleCommand(ctx context.Context, user model.User, cmd Command) ([]Output, error) {
	switch cmd.Name {
	case CommandStart:
		return m.start(ctx, user, false)
	case CommandHelp:
		return outputs(m.helpScreen()), nil
	default:
		return outputs(m.hintScreen()), nil
	}
}

func (m *Machine) handleButton(ctx context.Context, user model.User, press ButtonPress) ([]Output, error) {
	if press.Tag == TagRestart {
		return m.start(ctx, user, true)
	}

	s, ok, err := m.sessions.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("flow.handleButton: get session: %w", err)
	}
	if !ok {
		m.log.Debug().Int64("user_id", user.ID).Str("data", press.Raw).Msg("button without session")
		return outputs(m.expiredScreen()), nil
	}

	switch s.State {
	case model.StateSelectingPhase, model.StateAwaitingName:
		return m.selectScope(ctx, s, press)
	case model.StateAnsweringQuestions:
		return m.answer(ctx, user, s, press)
	case model.StateCheckingSubscription:
		if press.Tag == TagCheckSubscription {
			return m.checkSubscription(ctx, user, s)
		}
		return outputs(m.gateScreen(model.SubscriptionRequestKey)), nil
	case model.StateShowingResults:
		switch press.Tag {
		case TagAbout:
			return outputs(m.aboutScreen()), nil
		default:
			return outputs(m.resultsScreen(scoring.Score(m.bank, s))), nil
		}
	default:
		return outputs(m.expiredScreen()), nil
	}
}

func (m *Machine) handleText(ctx context.Context, user model.User, msg TextMessage) ([]Output, error) {
	s, ok, err := m.sessions.Get(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("flow.handleText: get session: %w", err)
	}
	if !ok || s.State != model.StateAwaitingName {
		return outputs(m.hintScreen()), nil
	}

	name, valid := FormatName(msg.Body)
	if !valid {
		return outputs(Screen{Text: m.text(model.NameRetryKey)}), nil
	}
	s.FullName = name

	if s.Pending == nil {
		s.State = model.StateSelectingPhase
		if err := m.save(ctx, s); err != nil {
			return nil, err
		}
		return outputs(m.welcomeScreen(false)), nil
	}

	s.Begin(*s.Pending, m.now())
	if err := m.save(ctx, s); err != nil {
		return nil, err
	}
	return outputs(m.questionScreen(s, false)), nil
}

// start сбрасывает сессию и имя пользователя и показывает выбор фазы
func (m *Machine) start(ctx context.Context, user model.User, edit bool) ([]Output, error) {
	if err := m.sessions.Delete(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("flow.start: delete session: %w", err)
	}

	s := model.NewSession(user.ID, m.now())
	if err := m.save(ctx, s); err != nil {
		return nil, err
	}

	m.ledger.RecordStart(user)
	m.observer.TestStarted()

	m.log.Info().Int64("user_id", user.ID).Bool("restart", edit).Msg("test started")
	return outputs(m.welcomeScreen(edit)), nil
}

func (m *Machine) selectScope(ctx context.Context, s *model.Session, press ButtonPress) ([]Output, error) {
	sel, ok := m.parseSelection(press)
	if !ok {
		if s.State == model.StateAwaitingName {
			return outputs(Screen{Text: m.text(model.NamePromptKey), Edit: true}), nil
		}
		return outputs(m.welcomeScreen(true)), nil
	}
	m.observer.SelectionMade(sel.FullTest)

	if s.FullName == "" {
		s.State = model.StateAwaitingName
		s.Pending = &sel
		if err := m.save(ctx, s); err != nil {
			return nil, err
		}
		return outputs(Screen{Text: m.text(model.NamePromptKey), Edit: true}), nil
	}

	s.Begin(sel, m.now())
	if err := m.save(ctx, s); err != nil {
		return nil, err
	}
	return outputs(m.questionScreen(s, true)), nil
}

func (m *Machine) parseSelection(press ButtonPress) (model.Selection, bool) {
	switch press.Tag {
	case TagFullTest:
		if press.HasArg {
			return model.Selection{}, false
		}
		return model.Selection{FullTest: true}, true
	case TagPhase:
		if !press.HasArg {
			return model.Selection{}, false
		}
		if _, err := m.bank.Lookup(press.Arg); err != nil {
			return model.Selection{}, false
		}
		return model.Selection{Phase: press.Arg}, true
	default:
		return model.Selection{}, false
	}
}

func (m *Machine) answer(ctx context.Context, user model.User, s *model.Session, press ButtonPress) ([]Output, error) {
	if press.Tag != TagAnswer || !press.HasArg || (press.Arg != 0 && press.Arg != 1) {
		m.log.Warn().Int64("user_id", user.ID).Str("data", press.Raw).Msg("malformed answer, session terminated")

		s.State = model.StateEnded
		s.Answers = make(map[int]map[int]bool)
		s.Pending = nil
		if err := m.save(ctx, s); err != nil {
			return nil, err
		}
		return outputs(Screen{Text: m.text(model.MalformedAnswerKey), Edit: true}), nil
	}

	s.Record(press.Arg == 1)

	phase := m.bank.Phase(s.Phase)
	switch {
	case s.Question < len(phase.Questions):
	case s.FullTest && s.Phase < m.bank.Len()-1:
		s.Phase++
		s.Question = 0
	default:
		return m.finish(ctx, user, s)
	}

	if err := m.save(ctx, s); err != nil {
		return nil, err
	}
	return outputs(m.questionScreen(s, true)), nil
}

// finish переводит к проверке подписки или сразу к результатам
func (m *Machine) finish(ctx context.Context, user model.User, s *model.Session) ([]Output, error) {
	if m.cfg.SkipSubscriptionCheck {
		m.observer.MembershipChecked(MembershipBypassed)
		return m.showResults(ctx, user, s)
	}

	s.State = model.StateCheckingSubscription
	if err := m.save(ctx, s); err != nil {
		return nil, err
	}
	return outputs(m.gateScreen(model.SubscriptionRequestKey)), nil
}

func (m *Machine) checkSubscription(ctx context.Context, user model.User, s *model.Session) ([]Output, error) {
	// сессия могла остаться у ворот после отключения проверки
	if m.cfg.SkipSubscriptionCheck || m.membership == nil {
		m.observer.MembershipChecked(MembershipBypassed)
		return m.showResults(ctx, user, s)
	}

	membership, err := m.membership.Check(ctx, user.ID)
	switch {
	case err != nil:
		// не удалось проверить: пропускаем пользователя к результатам
		m.log.Warn().Err(err).Int64("user_id", user.ID).Msg("membership lookup failed, allowing")
		m.observer.MembershipChecked(MembershipError)
	case !membership.Subscribed:
		m.observer.MembershipChecked(MembershipNotMember)
		m.log.Info().Int64("user_id", user.ID).Str("status", membership.Status).Msg("subscription not found")
		return outputs(m.gateScreen(model.SubscriptionMissingKey)), nil
	default:
		m.observer.MembershipChecked(MembershipMember)
	}

	return m.showResults(ctx, user, s)
}

// showResults первый показ результатов: статистика, архив и грамота.
// Повторный показ идёт через resultsScreen без побочных эффектов.
func (m *Machine) showResults(ctx context.Context, user model.User, s *model.Session) ([]Output, error) {
	res := scoring.Score(m.bank, s)

	if s.CertificateIssued {
		s.State = model.StateShowingResults
		if err := m.save(ctx, s); err != nil {
			return nil, err
		}
		return outputs(m.resultsScreen(res)), nil
	}

	s.State = model.StateShowingResults
	s.CertificateIssued = true
	if err := m.save(ctx, s); err != nil {
		return nil, err
	}

	out := outputs(m.resultsScreen(res))
	if !res.HasOverall {
		return out, nil
	}

	m.ledger.RecordCompletion(user, res.Overall, res.Total)
	m.observer.TestCompleted(res.Overall)

	name := s.FullName
	if name == "" {
		name = user.DisplayName()
	}

	if m.archive != nil {
		if _, err := m.archive.Archive(ctx, user.ID, name, s.FullTest, res); err != nil {
			m.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to archive result")
		}
	}

	m.log.Info().
		Int64("user_id", user.ID).
		Int("score", res.Total).
		Int("phases", res.Completed).
		Str("level", res.Overall.Key()).
		Msg("test completed")

	img, err := m.certificates.Render(name, res.Total, res.Overall.Label(), res.Completed)
	m.observer.CertificateRendered(err)
	if err != nil {
		m.log.Error().Err(err).Int64("user_id", user.ID).Msg("failed to render certificate")
		return out, nil
	}

	return append(out, Photo{
		Image:    img,
		Caption:  m.text(model.CertificateCaptionKey),
		FileName: CertificateFileName,
	}), nil
}

func (m *Machine) save(ctx context.Context, s *model.Session) error {
	s.UpdatedAt = m.now()
	if err := m.sessions.Save(ctx, s); err != nil {
		return fmt.Errorf("flow: save session: %w", err)
	}
	return nil
}

func (m *Machine) text(key string) string {
	return m.placeholders.Replace(m.texts.GetMessageByKey(key))
}

func (m *Machine) label(key string) string {
	return m.labels.Replace(m.texts.GetMessageByKey(key))
}

func outputs(out ...Output) []Output {
	return out
}
