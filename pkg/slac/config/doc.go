// Package config loads expression environments from YAML or JSON
// documents. A document declares variables, optional named
// expressions, and engine settings:
//
//	variables:
//	  price: 99.5
//	  name: 'Rincewind'
//	  tags: [a, b, c]
//	expressions:
//	  discounted: price > 100 and active
//	engine:
//	  optimize: true
//	  validate: true
//
// Variables map onto the dynamic value model: booleans, numbers,
// strings and homogeneous or mixed lists. Nested maps are rejected.
package config
