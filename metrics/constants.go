package metrics

// Metric names
const (
	MetricNameEventsPublished  = "squidbot_events_published_total"
	MetricNameGamblesPlaced    = "squidbot_gambles_placed_total"
	MetricNameGamblesSettled   = "squidbot_gambles_settled_total"
	MetricNameGamblesCanceled  = "squidbot_gambles_canceled_total"
	MetricNameGambleStake      = "squidbot_gamble_stake_squids"
	MetricNameItemsSold        = "squidbot_items_sold_total"
	MetricNameSaleRewards      = "squidbot_sale_rewards_squids_total"
	MetricNameBalanceChanges   = "squidbot_balance_changes_total"
	MetricNameCommandsHandled  = "squidbot_commands_handled_total"
	MetricNameCommandDuration  = "squidbot_command_duration_seconds"
	MetricNameNameLookupErrors = "squidbot_name_lookup_errors_total"
)

// Help text
const (
	HelpTextEventsPublished  = "Total number of ledger events published after commit"
	HelpTextGamblesPlaced    = "Total number of pending gambles placed"
	HelpTextGamblesSettled   = "Total number of gambles paid out, by result"
	HelpTextGamblesCanceled  = "Total number of pending gambles canceled"
	HelpTextGambleStake      = "Distribution of settled gamble stakes"
	HelpTextItemsSold        = "Total number of items sold"
	HelpTextSaleRewards      = "Total squids paid out for sold items"
	HelpTextBalanceChanges   = "Total number of balance changes, by reason"
	HelpTextCommandsHandled  = "Total number of chat commands handled, by command and status"
	HelpTextCommandDuration  = "Chat command latency in seconds"
	HelpTextNameLookupErrors = "Total number of failed display name lookups"
)

// Labels
const (
	LabelType    = "type"
	LabelResult  = "result"
	LabelReason  = "reason"
	LabelCommand = "command"
	LabelStatus  = "status"
)

// Label values
const (
	ResultWin  = "win"
	ResultLoss = "loss"

	StatusOK       = "ok"
	StatusRejected = "rejected"
	StatusError    = "error"
	StatusUnknown  = "unknown"

	// CommandUnregistered labels every command name the bot does not handle
	CommandUnregistered = "unregistered"
)

// StakeBuckets spans single squids up to large accumulators
var StakeBuckets = []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000, 10000}
