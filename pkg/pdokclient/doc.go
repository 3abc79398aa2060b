// Package pdokclient provides the entry points for creating PDOK geodata
// clients.
//
// Every client can be constructed two ways: through a direct constructor
// taking the required arguments, or through a builder with chainable
// optional settings. Both produce identically configured clients; the
// builder form is preferred for anything beyond the defaults.
//
//	brk, err := pdokclient.NewBrkClientBuilder("my-service/1.0").
//		AcceptCRS(pdok.Rijksdriehoek).
//		RequestTimeout(10 * time.Second).
//		Build()
package pdokclient
