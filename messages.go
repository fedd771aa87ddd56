package main

// Messages coming from clients. Event names match the original protocol the
// client app speaks.
type ClientMessage struct {
	Type       string          `json:"type"`                 // "createGame", "joinGame", "playerSelectedSeries", "clientReadyForBidding", "submitFinalBid", "playerMadeChoice", "playerSelectedQuestion", "submitTruthGuess"
	PlayerName string          `json:"playerName,omitempty"` // createGame / joinGame
	GameID     string          `json:"gameId,omitempty"`     // everything after creation
	Series     []Card          `json:"series,omitempty"`     // playerSelectedSeries
	BidAmount  int             `json:"bidAmount"`            // submitFinalBid
	Choice     string          `json:"choice,omitempty"`     // playerMadeChoice: "Ask" or "Truth"
	QuestionID string          `json:"questionId,omitempty"` // playerSelectedQuestion
	Params     *QuestionParams `json:"params,omitempty"`     // playerSelectedQuestion
	Guess      []Card          `json:"guess,omitempty"`      // submitTruthGuess
}

type PlayerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AskedQuestionRecord is appended to a session's history once a question has
// been answered; immutable thereafter.
type AskedQuestionRecord struct {
	QuestionID         string          `json:"questionId"`
	QuestionText       string          `json:"questionText"`
	Answer             any             `json:"answer"`
	Params             *QuestionParams `json:"params,omitempty"`
	AskedByPlayerID    string          `json:"askedByPlayerId"`
	AnsweredByPlayerID string          `json:"answeredByPlayerId"`
}

type GameCreatedMessage struct {
	Type     string       `json:"type"` // "gameCreated"
	GameID   string       `json:"gameId"`
	PlayerID string       `json:"playerId"`
	Players  []PlayerInfo `json:"players"`
}

type PlayerJoinedMessage struct {
	Type    string       `json:"type"` // "playerJoined"
	GameID  string       `json:"gameId"`
	Players []PlayerInfo `json:"players"`
}

type PlayerLeftMessage struct {
	Type                   string `json:"type"` // "playerLeft"
	GameID                 string `json:"gameId"`
	DisconnectedPlayerID   string `json:"disconnectedPlayerId"`
	DisconnectedPlayerName string `json:"disconnectedPlayerName"`
}

type UpdatePlayerNamesMessage struct {
	Type               string `json:"type"` // "updatePlayerNames"
	CurrentPlayerName  string `json:"currentPlayerName"`
	OpponentPlayerName string `json:"opponentPlayerName"`
}

type NavigateToGameSetupMessage struct {
	Type    string       `json:"type"` // "navigateToGameSetup"
	GameID  string       `json:"gameId"`
	Players []PlayerInfo `json:"players"`
	SelfID  string       `json:"selfId"`
}

type OpponentSeriesConfirmedMessage struct {
	Type         string `json:"type"` // "opponentSeriesConfirmed"
	OpponentName string `json:"opponentName"`
}

type NavigateToBiddingMessage struct {
	Type       string       `json:"type"` // "allReadyNavigateToBidding"
	GameID     string       `json:"gameId"`
	NextScreen string       `json:"nextScreen"`
	Players    []PlayerInfo `json:"players"`
	SelfID     string       `json:"selfId"`
}

// BiddingPhaseStateMessage is deliberately asymmetric: the recipient sees
// their own exact balance, but only a low-coins boolean for the opponent, and
// only the questions they personally asked.
type BiddingPhaseStateMessage struct {
	Type                  string                `json:"type"` // "biddingPhaseState"
	GameID                string                `json:"gameId"`
	MyPlayerID            string                `json:"myPlayerId"`
	MyPlayerName          string                `json:"myPlayerName"`
	MyInitialCoins        int                   `json:"myInitialCoins"`
	OpponentName          string                `json:"opponentName"`
	OpponentLowCoins      bool                  `json:"opponentLowCoins"`
	TimerDuration         int                   `json:"timerDuration"` // seconds
	AskedQuestionsHistory []AskedQuestionRecord `json:"askedQuestionsHistory"`
}

type OpponentHasBidMessage struct {
	Type string `json:"type"` // "opponentHasBidNotification"
}

type BiddingResolvedMessage struct {
	Type                      string `json:"type"` // "biddingResolved"
	WinnerID                  string `json:"winnerId,omitempty"`
	WinnerName                string `json:"winnerName,omitempty"`
	BidsTied                  bool   `json:"bidsTied"`
	YourNewCoinTotal          int    `json:"yourNewCoinTotal"`
	OpponentNewLowCoinsStatus bool   `json:"opponentNewLowCoinsStatus"`
}

type EnableActionChoiceMessage struct {
	Type   string `json:"type"` // "enableActionChoice"
	GameID string `json:"gameId"`
}

type NavigateToQuestionSelectionMessage struct {
	Type        string `json:"type"` // "navigateToQuestionSelection"
	GameID      string `json:"gameId"`
	ChooserName string `json:"chooserName"`
}

type OpponentChoosingQuestionMessage struct {
	Type        string `json:"type"` // "opponentChoosingQuestion"
	GameID      string `json:"gameId"`
	ChooserName string `json:"chooserName"`
}

type NavigateToTruthGuessMessage struct {
	Type        string `json:"type"` // "navigateToTruthGuess"
	GameID      string `json:"gameId"`
	GuesserID   string `json:"guesserId"`
	GuesserName string `json:"guesserName"`
	TargetID    string `json:"targetId"`
	TargetName  string `json:"targetName"`
}

type OpponentIsGuessingMessage struct {
	Type        string `json:"type"` // "opponentIsGuessing"
	GameID      string `json:"gameId"`
	GuesserID   string `json:"guesserId"`
	GuesserName string `json:"guesserName"`
}

type QuestionAnsweredMessage struct {
	Type   string `json:"type"` // "questionAnswered"
	GameID string `json:"gameId"`
	AskedQuestionRecord
}

type TruthGuessResultMessage struct {
	Type            string `json:"type"` // "truthGuessResult"
	GameID          string `json:"gameId"`
	WasGuessCorrect bool   `json:"wasGuessCorrect"`
	WinnerID        string `json:"winnerId,omitempty"`
	WinnerName      string `json:"winnerName,omitempty"`
	Reason          string `json:"reason,omitempty"`
}

type BiddingCancelledMessage struct {
	Type    string `json:"type"` // "biddingCancelledOpponentLeft"
	Message string `json:"message"`
}

// GameErrorMessage is only ever sent to the client whose request failed.
type GameErrorMessage struct {
	Type    string `json:"type"` // "gameError"
	Message string `json:"message"`
}

func gameError(message string) GameErrorMessage {
	return GameErrorMessage{Type: "gameError", Message: message}
}
