// Package doubles provides a pregenerated gomock file for working with tests.
// If you are interested in testing your component with an implementation that
// behaves closely to a real storage, check out the storages/memorystorage package.
// The primary goal of this package is to test rainy paths in your interactors,
// which is more complicated to set up properly with real implementations.
package doubles

//go:generate mockgen -package doubles -destination MockStorage.go github.com/fabrica-go/fabrica Storage
