// Package resp builds standardized HTTP JSON responses.
//
// A handler describes the outcome of a request as an Intent, built with one
// of the variant constructors, and hands it to Render, Write or JSON. The
// renderer applies a single envelope policy:
//
//   - 204 No Content renders an empty body without a content type.
//   - An intent carrying data renders the data itself as the body.
//   - Any other intent renders an envelope holding the present fields among
//     message, details and errors (errors only for status >= 400), followed
//     by the numeric status.
//
// For example:
//
//	{
//	  "message": "Bad Request",
//	  "details": [{"loc": ["name"], "msg": "The field 'name' is required."}],
//	  "status": 400
//	}
//
// Error envelopes that would otherwise be empty fall back to the default
// message for the status, or "Error".
//
// # Success Responses
//
//	intent, err := resp.Data(user)                         // 200, body is user
//	resp.Confirmation(resp.WithDetails("user deleted"))    // 200 envelope
//	resp.Created(resp.WithData(newUser))                   // 201, body is newUser
//	resp.NoContent()                                       // 204, empty body
//
// # Error Responses
//
//	resp.NotFound()                                        // {"message":"Resource Not Found","status":404}
//	resp.BadRequest(resp.WithValidation(err))              // details flattened from validator errors
//	resp.Unauthorized(resp.WithDetails("token expired"))
//	resp.ServerError().WithMessage("Database unavailable")
//
// # Writing
//
//	resp.Write(w, resp.NotFound())   // net/http
//	resp.JSON(c, resp.NotFound())    // gin
//
// Intents are immutable values; WithMessage returns an updated copy. Render
// is a pure function and safe for concurrent use.
package resp
