package availability

// Predicate names understood by the builtin registry
const (
	PredicateTimeOfDay      = "TIME_OF_DAY"
	PredicateTime           = "TIME"
	PredicatePlayerTileX    = "PLAYER_TILE_X"
	PredicatePlayerTileY    = "PLAYER_TILE_Y"
	PredicatePlayerInRect   = "PLAYER_IN_RECT"
	PredicateBobberInRect   = "BOBBER_IN_RECT"
	PredicateWaterDepth     = "WATER_DEPTH"
	PredicateRuleActive     = "SPECIAL_ORDER_RULE_ACTIVE"
	PredicateCanRecatch     = "CAN_RECATCH"
	PredicateFrenzyFish     = "CATCHING_FRENZY_FISH"
	PredicateHasTackle      = "HAS_TACKLE"
	PredicateFishingLevel   = "FISHING_LEVEL"
	PredicateNegationPrefix = "!"
)

// maxSuggestionDistance bounds "did you mean" suggestions for unknown predicates
const maxSuggestionDistance = 3

// Log Messages
const (
	LogMsgUnknownPredicate  = "Unknown predicate; entry will never be available"
	LogMsgInvalidArguments  = "Predicate arguments could not be parsed; condition fails"
	LogMsgHistoryLookupFail = "Catch history lookup failed; treating as not recatchable"
)

// Log Fields
const (
	LogFieldPredicate  = "predicate"
	LogFieldSuggestion = "suggestion"
	LogFieldArgs       = "args"
	LogFieldActor      = "actor"
	LogFieldError      = "error"
)

// Error Messages
const (
	ErrMsgUnknownPredicateFormat = "%w: %s"
	ErrMsgDidYouMeanFormat       = "%w: %s (did you mean %s?)"
)
