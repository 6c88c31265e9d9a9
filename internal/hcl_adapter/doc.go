// Package hcl_adapter is the HCL implementation of config.Loader. It reads
// recipe files of the form
//
//	step "train" {
//	  description = "Fits the model."
//
//	  adapt {
//	    features = input.prepare.features
//	    labels   = input["prepare"]["label column"]
//	    splits   = tuple(input.split.train, input.split.test)
//	    columns  = [input.prepare.id, "constant"]
//	    params   = { (input.tune.best_key) = input.tune.best_value, seed = 42 }
//	    epochs   = 10
//	  }
//	}
//
// and translates every attribute of an adapt block into an adapter.Recipe.
// Only the forms shown above are recognised; any other expression must be
// free of references and is evaluated once, at load time, into a constant.
package hcl_adapter
