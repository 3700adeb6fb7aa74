// Package clientsdk is a Go client for the ClientFlow API.
//
// An SDKClient talks to the API server and to the identity provider that
// issues bearer tokens. Authenticated calls go through a Session, which holds
// the access and refresh tokens and refreshes them automatically before they
// expire:
//
//	sdk := clientsdk.New("http://localhost:8080", "https://xyz.supabase.co", anonKey)
//	session, err := sdk.SignIn(ctx, "staff@example.com", "password")
//	clients, err := session.ListClients(ctx)
//	visible := clientsdk.Filter(clients, "jane")
package clientsdk
