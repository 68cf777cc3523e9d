// Package router dispatches inputs to the first of several named partial
// functions whose domain contains them.
//
// Routing decisions use IsDefinedAt only, so a route's transform runs
// exactly once, for the route that wins. A Router is itself a pfn.Func and
// can be composed or fed to lite.Run like any other partial function.
// Serve runs dispatch on concurrent workers built on core.Engine.
package router
