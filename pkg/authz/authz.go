package authz

import (
	"corpsite_backend/internal/model"
)

type Operation string

const (
	OpContactSubmit   Operation = "contact.submit"
	OpContactList     Operation = "contact.list"
	OpContactMarkRead Operation = "contact.markRead"
	OpNewsList        Operation = "news.list"
	OpNewsGet         Operation = "news.get"
	OpNewsCreate      Operation = "news.create"
	OpNewsUpdate      Operation = "news.update"
	OpNewsDelete      Operation = "news.delete"
	OpNewsListAll     Operation = "news.listAll"
)

// adminOnly operasyonlar sadece admin rolü ile çalışır
var adminOnly = map[Operation]bool{
	OpContactList:     true,
	OpContactMarkRead: true,
	OpNewsCreate:      true,
	OpNewsUpdate:      true,
	OpNewsDelete:      true,
	OpNewsListAll:     true,
}

// IsPermitted reports whether the caller may perform op.
// A nil caller is an anonymous visitor.
func IsPermitted(op Operation, caller *model.User) bool {
	if !adminOnly[op] {
		return true
	}
	return caller != nil && caller.IsAdmin()
}
