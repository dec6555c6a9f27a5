package handler

import jsoniter "github.com/json-iterator/go"

// json centraliza a serialização dos handlers no jsoniter, mantendo a
// API compatível com a biblioteca padrão.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
