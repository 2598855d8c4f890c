package extid_test

type IDByIDField struct {
	ID string
}

type IDByUppercaseTag struct {
	DI string `ext:"ID"`
}

type IDByLowercaseTag struct {
	DI string `ext:"id"`
}

type IDByTagNextToIDField struct {
	DI string `ext:"ID"`
	ID string
}

type IDAsInterface struct {
	ID interface{} `ext:"ID"`
}

type IDAsPointer struct {
	ID *string `ext:"ID"`
}

type IDAsInt struct {
	ID int `ext:"ID"`
}

type UnidentifiableID struct {
	UserID string
}
