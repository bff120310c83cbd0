// Package orgsdk is a typed Go client for the orgtab identity and
// organisation service.
//
// Unauthenticated operations (register, login, health probes) hang off
// SDKClient. Both register and login return a Session carrying the bearer
// token, which exposes the protected user and organisation operations.
//
//	client := orgsdk.NewSDKClient("http://localhost:8080")
//	session, err := client.Register(ctx, orgsdk.RegisterRequest{...})
//	if err != nil { ... }
//	orgs, err := session.ListOrganisations(ctx)
package orgsdk
