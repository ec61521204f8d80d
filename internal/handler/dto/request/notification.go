package request

type ListNotificationsQuery struct {
	PageQuery
	UnreadOnly bool `form:"unread_only"`
}
