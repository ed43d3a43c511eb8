// Package web embeds the static form page and its client script.
package web

import "embed"

//go:embed index.html app.js
var Assets embed.FS
