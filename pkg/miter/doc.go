// Package miter builds the XOR-of-outputs miter of two matched output
// lists, Tseitin-encodes it onto an external CDCL SAT engine, and drives
// the Idle -> Encoding -> Solving -> Diagnosing? -> Done state machine:
// UNSAT means the two netlists are equivalent; SAT means they differ,
// and the driver re-solves one single-output miter per candidate to
// localize which outputs witness the difference.
//
// The SAT engine collaborator is a narrow, write-only interface
// (NewVar/AddClause/Solve/SolveAssuming); NewGiniEngine binds it to
// github.com/go-air/gini.
package miter
