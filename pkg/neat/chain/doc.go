// Package chain provides fluent composition over neat.Outcome. A chain
// short-circuits on the first failure; later links are skipped and the
// failure travels to the end, where Finally or Outcome reads it out.
// Type-changing links are package-level functions (Then, ThenTry, Map)
// since methods cannot introduce new type parameters.
package chain
