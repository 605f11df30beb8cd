package apierrors

const (
	MsgInternalError      = "internalError"
	MsgInvalidTodoID      = "invalidTodoID"
	MsgInvalidTodoPayload = "invalidTodoPayload"
	MsgTodoNotFound       = "todoNotFound"
	MsgFailListTodos      = "failListTodos"
	MsgFailCreateTodo     = "failCreateTodo"
	MsgFailUpdateTodo     = "failUpdateTodo"
	MsgFailDeleteTodo     = "failDeleteTodo"

	MsgInvalidAnalyzePayload   = "invalidAnalyzePayload"
	MsgInvalidBreakdownPayload = "invalidBreakdownPayload"
	MsgGoalRequired            = "goalRequired"
	MsgGoalTooShort            = "goalTooShort"
	MsgGoalTooLong             = "goalTooLong"
	MsgInvalidMaxTasks         = "invalidMaxTasks"
	MsgInvalidInput            = "invalidInput"

	MsgAINotConfigured    = "aiNotConfigured"
	MsgAITimeout          = "aiTimeout"
	MsgAIUnexpectedFormat = "aiUnexpectedFormat"
	MsgAINoValidTasks     = "aiNoValidTasks"
	MsgAIProviderError    = "aiProviderError"
	MsgAIAnalysisFailed   = "aiAnalysisFailed"
	MsgAIBreakdownFailed  = "aiBreakdownFailed"

	MsgRateLimitExceeded = "rateLimitExceeded"
)
