// Package core contains the Crypto Pay client, its wire types and the request
// executor. The transport and adapter packages depend on core; core must not
// depend on them.
package core
