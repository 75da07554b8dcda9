package repoargs

type RepositoryName string

const (
	OrderRepoName                RepositoryName = "order"
	ProcessedTransactionRepoName RepositoryName = "processed_transaction"
	MatchAttemptRepoName         RepositoryName = "match_attempt"
)
