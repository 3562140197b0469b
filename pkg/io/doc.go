// Package io reads and writes tree documents in JSON and TOML.
//
// # Document Format
//
// A document is one node object; children nest recursively:
//
//	{
//	  "content": "root",
//	  "decorate": "box",
//	  "children": [
//	    {"content": "left\nside"},
//	    {"placeholder": true},
//	    {"content": "right", "inset": {"left": 1}}
//	  ]
//	}
//
// The same tree in TOML uses arrays of tables:
//
//	content = "root"
//	decorate = "box"
//
//	[[children]]
//	content = "left\nside"
//
//	[[children]]
//	placeholder = true
//
// # Node Fields
//
//   - content: the text to draw; may contain newlines but no other control
//     characters
//   - placeholder: the node only reserves space; it must have no content and
//     no children
//   - inset: padding as {top, right, bottom, left}
//   - decorate: "box", "box-ascii" or "brackets"
//   - inherit: whether decoration also wraps the direct children (default
//     true)
//   - children: ordered child nodes
//
// # Export
//
// [WriteJSON] and [WriteTOML] emit resolved documents: decorated content is
// written as plain content, so the exported document renders exactly like
// the tree it came from.
package io
