// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package endpoint turns a parsed command-line invocation into a request.
//
// A [Resolver] maps a [Call] onto a [client.RequestBuilder] using only the
// builder-side half of [client.API]; it never performs I/O. Two resolvers are
// provided:
//
//   - [Raw] takes the method and path straight from the arguments.
//   - [Catalogue] looks up a named operation loaded from a JSON or YAML file,
//     fills its path template and validates the request body against the
//     operation's JSON Schema.
//
// Example catalogue (YAML):
//
//	operations:
//	  - name: get-pet
//	    method: GET
//	    path: /pets/{id}
//	    params:
//	      - name: id
//	        in: path
//	      - name: fields
//	        in: query
//	  - name: create-pet
//	    method: POST
//	    path: /pets
//	    body:
//	      required: true
//	      schema:
//	        type: object
//	        required: [name]
//	        properties:
//	          name: {type: string}
package endpoint
