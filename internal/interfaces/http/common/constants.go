package common

// MaxRequestBody limits JSON request bodies for auth/form endpoints.
const MaxRequestBody = 1 << 20
