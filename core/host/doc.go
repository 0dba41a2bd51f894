// Package host assembles a runnable server process from declared
// configuration stages. A Host owns independent stage accumulators for
// logging, service registration, and middleware, plus an endpoint list and
// an optional fallback handler. Stages may be declared in any order across
// the accumulators; Run applies them at exactly one point each, in a fixed
// sequence:
//
//  1. the logging accumulator produces the root logger;
//  2. the service accumulator populates the registry, after the framework's
//     own services (logger, configuration) are registered first;
//  3. the router is built;
//  4. the middleware accumulator applies to the router in declared order;
//  5. endpoint dispatch follows the middleware chain and cannot be displaced;
//  6. the declared fallback handler becomes the terminal catch-all;
//  7. the server starts and Run blocks until shutdown.
//
// A Host moves through Accumulating -> Finalizing -> Running exactly once.
// Declaring stages after Run panics with ErrHostFinalized, and a second Run
// returns it.
//
//	err := host.New(
//		host.WithConfigSources(config.JSONFile("app.json").Optional()),
//	).
//		Use(middleware.RequestID(), middleware.Logging()).
//		Get("/hello", response.PlainText("hello")).
//		NotFound(response.PlainText("not found")).
//		Run(ctx)
package host
