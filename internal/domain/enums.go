package domain

// MessageRole is the author of a chat message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

func (r MessageRole) String() string { return string(r) }

func (r MessageRole) IsValid() bool {
	switch r {
	case MessageRoleUser, MessageRoleAssistant:
		return true
	}
	return false
}

// Mobility is the assessed mobility level.
type Mobility string

const (
	MobilityIndependent Mobility = "independent"
	MobilityCane        Mobility = "cane"
	MobilityWalker      Mobility = "walker"
	MobilityWheelchair  Mobility = "wheelchair"
	MobilityBedridden   Mobility = "bedridden"
)

func (m Mobility) String() string { return string(m) }

func (m Mobility) IsValid() bool {
	switch m {
	case MobilityIndependent, MobilityCane, MobilityWalker, MobilityWheelchair, MobilityBedridden:
		return true
	}
	return false
}

// CognitiveStatus is the assessed cognitive state.
type CognitiveStatus string

const (
	CognitiveNormal          CognitiveStatus = "normal"
	CognitiveMildDecline     CognitiveStatus = "mild_decline"
	CognitiveModerateDecline CognitiveStatus = "moderate_decline"
	CognitiveSevereDecline   CognitiveStatus = "severe_decline"
)

func (c CognitiveStatus) String() string { return string(c) }

func (c CognitiveStatus) IsValid() bool {
	switch c {
	case CognitiveNormal, CognitiveMildDecline, CognitiveModerateDecline, CognitiveSevereDecline:
		return true
	}
	return false
}

// SupportSystem describes the family/caregiver support available.
type SupportSystem string

const (
	SupportStrong   SupportSystem = "strong"
	SupportModerate SupportSystem = "moderate"
	SupportLimited  SupportSystem = "limited"
	SupportNone     SupportSystem = "none"
)

func (s SupportSystem) String() string { return string(s) }

func (s SupportSystem) IsValid() bool {
	switch s {
	case SupportStrong, SupportModerate, SupportLimited, SupportNone:
		return true
	}
	return false
}

// FavoriteAction is the operation requested on a user's favorites.
type FavoriteAction string

const (
	FavoriteActionAdd    FavoriteAction = "add"
	FavoriteActionRemove FavoriteAction = "remove"
	FavoriteActionList   FavoriteAction = "list"
)

func (a FavoriteAction) String() string { return string(a) }

func (a FavoriteAction) IsValid() bool {
	switch a {
	case FavoriteActionAdd, FavoriteActionRemove, FavoriteActionList:
		return true
	}
	return false
}

// BudgetRange is the categorical monthly budget chosen on the intake form.
type BudgetRange string

const (
	Budget2000to3000 BudgetRange = "2000-3000"
	Budget3000to4000 BudgetRange = "3000-4000"
	Budget4000to5000 BudgetRange = "4000-5000"
	Budget5000to6000 BudgetRange = "5000-6000"
	Budget6000Plus   BudgetRange = "6000+"
)

func (b BudgetRange) String() string { return string(b) }

func (b BudgetRange) IsValid() bool {
	switch b {
	case Budget2000to3000, Budget3000to4000, Budget4000to5000, Budget5000to6000, Budget6000Plus:
		return true
	}
	return false
}
