/*
Package curve generates base paths for diagram lines: the undecorated
geometric path of a line, sampled to a polyline.

Generators

	Straight    evenly spaced points on the segment between two anchors
	Bezier      a cubic Bezier between two anchors, with optional tangent angles
	ArcLoop     a circular arc around a center, for self-loops (Loop for ellipses)
	VertexLoop  a closed loop starting and ending at a single vertex
	Spline      a Hobby spline through a sequence of waypoints

Anchors carry an optional tangent direction in degrees. An unset direction
(Free) means "head straight towards the other anchor". Generate dispatches
on a Style tag.

Sampling is uniform in the curve parameter, not in arc length. Parameter
uniform sampling compresses points where the curve bends; clients needing
uniform spacing resample with package arclen.

Hobby's algorithm is explained in

	Smooth, Easy to Compute Interpolating Splines -- John D. Hobby
	Computer Science Dept. Stanford University
	Report No. STAN-CS-85-1047, Jan 1985

and in Computers & Typesetting, Vol. B & D. The notation of spline.go sticks
to MetaFont's (theta, phi, psi, u, v).

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve
