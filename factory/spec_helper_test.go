package factory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fabrica-go/fabrica/factory"
)

type User struct {
	ID        int64 `ext:"ID"`
	Name      string
	Email     string
	Age       int
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Post struct {
	ID        string `ext:"ID"`
	Title     string
	AuthorID  int64
	Author    *User
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Category struct {
	ID       int64 `ext:"ID"`
	Name     string
	ParentID int64
	Parent   *Category
}

type Tagless struct {
	Word string
}

type Attachment struct {
	Path string
}

type Message struct {
	ID         int64 `ext:"ID"`
	Attachment *Attachment
}

func newTestFactory(tb testing.TB) *factory.Factory {
	f := factory.New()

	f.MustDefine(User{},
		factory.Attr(`Name`, func() interface{} { return `Unnamed User` }),
		factory.Sequence(`Email`, func(n int64) interface{} {
			return fmt.Sprintf(`user-%d@example.com`, n)
		}),
		factory.Attr(`Age`, func() interface{} { return 21 }))

	f.MustDefine(Post{},
		factory.Attr(`Title`, func() interface{} { return `an interesting title` }),
		factory.Assoc(`Author`))

	f.MustDefine(Category{},
		factory.Attr(`Name`, func() interface{} { return `general` }),
		factory.Assoc(`Parent`))

	return f
}
