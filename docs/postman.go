package docs

import _ "embed"

// PostmanCollection is the Postman collection served at /postman.
//
//go:embed postman_collection.json
var PostmanCollection []byte
