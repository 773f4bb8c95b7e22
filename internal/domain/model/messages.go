package model

// Ключи текстов бота. Тексты можно переопределить в таблице messages.
const (
	WelcomeKey             = "welcome"
	AboutKey               = "about"
	HelpKey                = "help"
	NamePromptKey          = "name_prompt"
	NameRetryKey           = "name_retry"
	SubscriptionRequestKey = "subscription_request"
	SubscriptionMissingKey = "subscription_missing"
	MalformedAnswerKey     = "malformed_answer"
	UnexpectedErrorKey     = "unexpected_error"
	SessionExpiredKey      = "session_expired"
	TextHintKey            = "text_hint"
	CertificateCaptionKey  = "certificate_caption"
	PartialNoticeKey       = "partial_notice"
	RecommendationLowKey   = "recommendation_low"
	RecommendationMidKey   = "recommendation_medium"
	RecommendationHighKey  = "recommendation_high"
)

// Ключи подписей кнопок
const (
	AgreeButtonKey     = "button_agree"
	DisagreeButtonKey  = "button_disagree"
	FullTestButtonKey  = "button_full_test"
	RestartButtonKey   = "button_restart"
	AboutButtonKey     = "button_about"
	BackButtonKey      = "button_back_to_results"
	CheckButtonKey     = "button_check_subscription"
	SubscribeButtonKey = "button_subscribe"
	TakeTestButtonKey  = "button_take_test"
)

// Message текст с ключом
type Message struct {
	Key  string
	Text string
}
